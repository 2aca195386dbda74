//go:build !android

package utils

// EnsureStorageDir 桌面和 iOS 上 gdata 会自行创建目录，无需处理
func EnsureStorageDir() error { return nil }

// GetStoragePath 只有 Android 需要在日志中输出存储路径
func GetStoragePath() string { return "" }
