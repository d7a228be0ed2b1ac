package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
	// LogTimeFormat 活动日志条目的时间戳格式
	LogTimeFormat = "15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)
