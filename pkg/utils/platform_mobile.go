//go:build mobile

package utils

// IsMobile 使用 -tags mobile 构建（ebitenmobile）时始终为 true
func IsMobile() bool { return true }
