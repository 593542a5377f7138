package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// FileKV 基于本地文件的键值存储（浏览器 localStorage 的本地等价物）。
// 每个键对应数据目录下的一个文件。
type FileKV struct {
	dir string
}

// NewFileKV 创建文件键值存储
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

// Get 读取键值，键不存在时 ok 为 false
func (f *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	raw, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(raw), true, nil
}

// Set 写入键值（先写临时文件再原子替换）
func (f *FileKV) Set(_ context.Context, key, value string) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	target := f.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, sanitizeKey(key)+".json")
}

// sanitizeKey 将存储键转换为安全的文件名
func sanitizeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
