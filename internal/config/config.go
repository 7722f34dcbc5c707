package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	GinMode       string
	LogLevel      string
	UploadDir     string
	UploadURLPath string

	// SiteBaseAddr is the host part used in canonical asset self-links,
	// e.g. "blog.example.com" in http://blog.example.com/image/1/42.
	SiteBaseAddr string

	// Separators used when serializing id and keyword lists into single
	// text columns, and when translating them for display on the read path.
	NumberListSep string
	StringListSep string
	DisplaySep    string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "inklog.db"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	uploadURLPath := strings.TrimSpace(os.Getenv("UPLOAD_URL_PATH"))
	if uploadURLPath == "" {
		uploadURLPath = "/image"
	}

	siteBaseAddr := strings.TrimSpace(os.Getenv("SITE_BASE_ADDR"))
	if siteBaseAddr == "" {
		siteBaseAddr = fmt.Sprintf("localhost:%s", port)
	}

	numberListSep := os.Getenv("NUMBER_LIST_SEPARATOR")
	if numberListSep == "" {
		numberListSep = ","
	}

	stringListSep := os.Getenv("STRING_LIST_SEPARATOR")
	if stringListSep == "" {
		stringListSep = ";"
	}

	displaySep := os.Getenv("DISPLAY_SEPARATOR")
	if displaySep == "" {
		displaySep = ","
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  databasePath,
		GinMode:       ginMode,
		LogLevel:      logLevel,
		UploadDir:     uploadDir,
		UploadURLPath: uploadURLPath,
		SiteBaseAddr:  siteBaseAddr,
		NumberListSep: numberListSep,
		StringListSep: stringListSep,
		DisplaySep:    displaySep,
	}
}

// SiteBaseAddress returns the host used in canonical asset self-links.
func (c AppConfig) SiteBaseAddress() string { return c.SiteBaseAddr }

// NumberListSeparator returns the separator for serialized numeric id lists.
func (c AppConfig) NumberListSeparator() string { return c.NumberListSep }

// StringListSeparator returns the separator for serialized keyword lists.
func (c AppConfig) StringListSeparator() string { return c.StringListSep }

// DisplaySeparator returns the externally displayable list separator.
func (c AppConfig) DisplaySeparator() string { return c.DisplaySep }
