// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量声明在项目根目录（embed.go）和 mobile/embed.go。
// 本包按路径前缀把请求路由到对应的文件系统：
//   - "assets/..." → 图片、音效和资源清单
//   - "data/..."   → 玩法配置
//
// 使用前必须调用 Init()。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

const (
	assetsPrefix = "assets/"
	dataPrefix   = "data/"
)

// ErrNotInitialized 在 Init 之前访问资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 设置资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用；测试中可传入 fstest.MapFS
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// route 标准化路径并选择文件系统
func route(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", ErrNotInitialized
	}

	// embed.FS 只接受正斜杠
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")

	switch {
	case strings.HasPrefix(path, assetsPrefix):
		return assetsFS, path, nil
	case strings.HasPrefix(path, dataPrefix):
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with %q or %q)", path, assetsPrefix, dataPrefix)
}

// Open 打开嵌入文件
func Open(path string) (fs.File, error) {
	fsys, name, err := route(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 读取嵌入文件的全部内容
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := route(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 文件是否存在
func Exists(path string) bool {
	_, err := Stat(path)
	return err == nil
}

// Stat 获取文件信息
func Stat(path string) (fs.FileInfo, error) {
	fsys, name, err := route(path)
	if err != nil {
		return nil, err
	}
	return fs.Stat(fsys, name)
}
