package logger

import "time"

// Common field constructors for structured logging

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration creates a duration field in milliseconds
func Duration(key string, d time.Duration) Field {
	return Field{Key: key, Value: d.Milliseconds()}
}

// Any creates a field with any value
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// --- Domain-specific field helpers ---

// UserID creates a user_id field
func UserID(id string) Field {
	return Field{Key: "user_id", Value: id}
}

// ContentID creates a content_id field
func ContentID(id string) Field {
	return Field{Key: "content_id", Value: id}
}

// Slug creates a slug field
func Slug(slug string) Field {
	return Field{Key: "slug", Value: slug}
}

// CategoryID creates a category_id field
func CategoryID(id string) Field {
	return Field{Key: "category_id", Value: id}
}

// TagID creates a tag_id field
func TagID(id string) Field {
	return Field{Key: "tag_id", Value: id}
}

// MediaID creates a media_id field
func MediaID(id string) Field {
	return Field{Key: "media_id", Value: id}
}

// StoragePath creates a storage_path field
func StoragePath(path string) Field {
	return Field{Key: "storage_path", Value: path}
}

// Component creates a component field
func Component(name string) Field {
	return Field{Key: "component", Value: name}
}

// Status creates a status field
func Status(status int) Field {
	return Field{Key: "status", Value: status}
}

// ContentStatus creates a content_status field
func ContentStatus(status string) Field {
	return Field{Key: "content_status", Value: status}
}

// Method creates an HTTP method field
func Method(method string) Field {
	return Field{Key: "method", Value: method}
}

// Path creates an HTTP path field
func Path(path string) Field {
	return Field{Key: "path", Value: path}
}

// RemoteIP creates a remote_ip field
func RemoteIP(ip string) Field {
	return Field{Key: "remote_ip", Value: ip}
}

// Operation creates an operation field
func Operation(op string) Field {
	return Field{Key: "operation", Value: op}
}

// Count creates a count field
func Count(count int) Field {
	return Field{Key: "count", Value: count}
}
