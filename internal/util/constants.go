package util

import "fmt"

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 简历上传限制
const (
	ResumeMaxSizeBytes = 5 << 20 // 5MB
	MimePDF            = "application/pdf"
	MimeOctetStream    = "application/octet-stream"
)

var AllowedResumeExtensions = []string{".pdf", ".doc", ".docx"}

// ProgressReportCacheKey 报表缓存键，按用户与日期区分
func ProgressReportCacheKey(userID uint, date string) string {
	return fmt.Sprintf("aceit:progress:report:%d:%s", userID, date)
}
