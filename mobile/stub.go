//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 此文件在普通构建时编译，提供空的 Dummy 函数。
// 移动端入口（mobile.go）和资源嵌入（embed.go）需要先运行 make prepare-mobile，
// 仅在使用 -tags mobile 时编译，普通的 go build ./... 因此不会因缺少资源目录而失败。
package mobile

// Dummy 是一个空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
