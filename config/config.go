package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS        = ""              // e.g. "example.com,example2.com"
	MYSQL_DSN          = ""              // MySQL will be used if this is set
	SQLITE_FILE        = ""              // SQLite will be used if MYSQL_DSN is not configured and this is set
	BIND_ADDRESS       = "0.0.0.0:8080"
	JWT_SECRET         = ""              // Required. The server refuses to start without it
	UPLOAD_DIR         = "public/images" // Root directory for uploaded image files
	MAX_UPLOAD_SIZE_MB = 5               // Per-file upload ceiling
	THUMB_SIZE         = 384             // Bounding box (pixels) for generated thumbnails
	DEBUG_MODE         = true
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("JWT_SECRET", &JWT_SECRET)
	readEnvString("UPLOAD_DIR", &UPLOAD_DIR)
	readEnvInt("MAX_UPLOAD_SIZE_MB", &MAX_UPLOAD_SIZE_MB)
	readEnvInt("THUMB_SIZE", &THUMB_SIZE)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
}

// MaxUploadSize is the per-file upload ceiling in bytes
func MaxUploadSize() int64 {
	return int64(MAX_UPLOAD_SIZE_MB) * 1024 * 1024
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
