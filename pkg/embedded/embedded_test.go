package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/confetti.yaml": &fstest.MapFile{Data: []byte("burst:\n  count: 60\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
}

// TestNotInitialized 测试未初始化时访问资源
func TestNotInitialized(t *testing.T) {
	Init(nil)

	if _, err := Open("data/confetti.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open() error: got %v, want ErrNotInitialized", err)
	}
	if _, err := ReadFile("data/confetti.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error: got %v, want ErrNotInitialized", err)
	}
	if Exists("data/confetti.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

// TestReadFile 测试读取与路径规范化
func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/confetti.yaml", false},
		{"./ 前缀", "./data/confetti.yaml", false},
		{"文件不存在", "data/missing.yaml", true},
		{"未知前缀", "assets/confetti.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Error("ReadFile returned empty data")
			}
			if got := Exists(tt.path); got == tt.wantErr {
				t.Errorf("Exists(%q) = %v", tt.path, got)
			}
		})
	}
}

// TestInvalidPrefixMessage 测试无效路径前缀的错误信息
func TestInvalidPrefixMessage(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	_, err := Open("invalid/path/test.png")
	if err == nil {
		t.Fatal("Expected error for invalid path prefix")
	}
	if err.Error() != "unknown resource path prefix: invalid/path/test.png (must start with 'data/')" {
		t.Errorf("Unexpected error message: %v", err)
	}
}
