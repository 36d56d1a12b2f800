package form

import "fmt"

// hasFileFields checks if any of the dynamic fields are file inputs
func hasFileFields(fields []Field) bool {
	for _, field := range fields {
		if field.IsFile() {
			return true
		}
	}
	return false
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
