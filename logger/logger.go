package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// Logging setup for both the log file and the console. LOG_DIR=off keeps
// logs on stdout only.
func init() {
	dir := os.Getenv("LOG_DIR")
	if dir == "" {
		dir = filepath.Join("log", "app")
	}
	log.SetLevel(log.LevelInfo)
	if dir == "off" {
		log.SetOutput(os.Stdout)
		return
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		fmt.Println("❌ Could not create log directory:", err)
		log.SetOutput(os.Stdout)
		return
	}

	fileName := filepath.Join(dir, fmt.Sprintf("app_%s.log", time.Now().Format("02-01-2006")))
	logFile, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Println("❌ Could not open log file:", err)
		log.SetOutput(os.Stdout)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stdout, logFile))
}

func Success(message string) {
	log.Info("✅ " + message)
}

func Error(message string, err error) {
	if err != nil {
		log.Error("❌ " + message + ": " + err.Error())
	} else {
		log.Error("❌ " + message)
	}
}

func Warning(message string) {
	log.Warn("⚠️ " + message)
}

func Debug(message string) {
	log.Debug("🐛 " + message)
}

func Info(message string) {
	log.Info("ℹ️ " + message)
}

func Fatal(message string) {
	log.Fatal("💥 " + message)
	os.Exit(1)
}

func Printf(format string, args ...interface{}) {
	log.Info(fmt.Sprintf("📝 "+format, args...))
}

func PrintfWithLevel(level log.Level, format string, args ...interface{}) {
	switch level {
	case log.LevelInfo:
		log.Info(fmt.Sprintf("ℹ️ "+format, args...))
	case log.LevelError:
		log.Error(fmt.Sprintf("❌ "+format, args...))
	case log.LevelWarn:
		log.Warn(fmt.Sprintf("⚠️ "+format, args...))
	case log.LevelDebug:
		log.Debug(fmt.Sprintf("🐛 "+format, args...))
	default:
		log.Info(fmt.Sprintf("📝 "+format, args...))
	}
}
