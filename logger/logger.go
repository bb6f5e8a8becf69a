package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
)

// Level 日志级别类型
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

// 级别名称映射
var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// String 返回级别名称
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(l))
}

// Field 日志字段结构
type Field struct {
	Key   string
	Value interface{}
}

// Logger 结构化JSON日志器
type Logger struct {
	level   Level
	logger  *log.Logger
	mutex   sync.RWMutex
	logFile *os.File
}

var defaultLogger *Logger

func init() {
	defaultLogger = createLogger()
}

// createLogger 根据环境变量创建logger
// 默认写入stderr，stdout留给翻译结果输出
func createLogger() *Logger {
	l := &Logger{level: INFO}
	writers := []io.Writer{os.Stderr}

	if debug := os.Getenv("DEBUG"); debug == "true" || debug == "1" {
		l.level = DEBUG
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		if level, err := ParseLevel(logLevel); err == nil {
			l.level = level
		}
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法打开日志文件 %s: %v\n", logFile, err)
		} else {
			l.logFile = file
			if os.Getenv("LOG_CONSOLE") == "false" {
				writers = []io.Writer{file}
			} else {
				writers = append(writers, file)
			}
		}
	}

	l.logger = log.New(io.MultiWriter(writers...), "", 0)
	return l
}

// ParseLevel 从字符串解析日志级别
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	default:
		return INFO, fmt.Errorf("unknown log level: %s", s)
	}
}

func (l *Logger) shouldLog(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level <= level
}

func (l *Logger) log(level Level, msg string, fields []Field) {
	if !l.shouldLog(level) {
		return
	}

	_, file, line, _ := runtime.Caller(2)
	if idx := strings.LastIndex(file, "/"); idx >= 0 {
		file = file[idx+1:]
	}

	entry := map[string]interface{}{
		"timestamp": time.Now().Format("2006-01-02T15:04:05.000Z07:00"),
		"level":     level.String(),
		"message":   msg,
		"file":      fmt.Sprintf("%s:%d", file, line),
	}
	for _, field := range fields {
		entry[field.Key] = field.Value
	}

	data, err := sonic.Marshal(entry)
	if err != nil {
		data = []byte(fmt.Sprintf(`{"level":"%s","message":"JSON encoding error: %s"}`, level, err))
	}

	l.mutex.RLock()
	l.logger.Println(string(data))
	l.mutex.RUnlock()
}

// SetLevel 设置日志级别
func SetLevel(level Level) {
	defaultLogger.mutex.Lock()
	defer defaultLogger.mutex.Unlock()
	defaultLogger.level = level
}

// SetOutput 替换输出目标，主要用于测试
func SetOutput(w io.Writer) {
	defaultLogger.mutex.Lock()
	defer defaultLogger.mutex.Unlock()
	defaultLogger.logger.SetOutput(w)
}

// 全局日志函数
func Debug(msg string, fields ...Field) {
	defaultLogger.log(DEBUG, msg, fields)
}

func Info(msg string, fields ...Field) {
	defaultLogger.log(INFO, msg, fields)
}

func Warn(msg string, fields ...Field) {
	defaultLogger.log(WARN, msg, fields)
}

func Error(msg string, fields ...Field) {
	defaultLogger.log(ERROR, msg, fields)
}

// 字段构造函数
func String(key, val string) Field {
	return Field{Key: key, Value: val}
}

func Int(key string, val int) Field {
	return Field{Key: key, Value: val}
}

func Bool(key string, val bool) Field {
	return Field{Key: key, Value: val}
}

func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Value: val.String()}
}

func Any(key string, val interface{}) Field {
	return Field{Key: key, Value: val}
}

// Reinitialize 重新初始化默认logger（.env加载之后调用）
func Reinitialize() {
	if defaultLogger.logFile != nil {
		defaultLogger.logFile.Close()
	}
	defaultLogger = createLogger()
}

// Close 关闭日志文件
func Close() error {
	if defaultLogger.logFile != nil {
		return defaultLogger.logFile.Close()
	}
	return nil
}
