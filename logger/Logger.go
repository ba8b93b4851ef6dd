package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const PropertiesFile = "logger.properties"

var Log = &Logger{entry: logrus.NewEntry(logrus.StandardLogger())}

type Logger struct {
	entry *logrus.Entry
	// echo 不為 nil 時每一筆訊息也會印出來(終端機繪圖時要關掉)
	echo io.Writer
	file *lumberjack.Logger
}

type loggerProperties struct {
	logFilename  string
	maxSize      string
	maxBackups   string
	maxAge       string
	compressFlag string
	level        string
}

func readLoggerProperties(fs afero.Fs) (loggerProperties, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("properties")
	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")

	exists, err := afero.Exists(fs, PropertiesFile)
	if err != nil {
		return loggerProperties{}, err
	}
	if exists {
		v.SetConfigFile(PropertiesFile)
		if err := v.ReadInConfig(); err != nil {
			return loggerProperties{}, fmt.Errorf("read %s: %w", PropertiesFile, err)
		}
	}

	return loggerProperties{
		logFilename:  cast.ToString(v.Get("logFilename")),
		maxSize:      cast.ToString(v.Get("maxSize")),
		maxBackups:   cast.ToString(v.Get("maxBackups")),
		maxAge:       cast.ToString(v.Get("maxAge")),
		compressFlag: cast.ToString(v.Get("compress")),
		level:        cast.ToString(v.Get("level")),
	}, nil
}

// Init 依照 logger.properties 設定輸出檔案與等級，session 會附加在每一筆紀錄上
func (l *Logger) Init(fs afero.Fs, session string, echo io.Writer) error {
	p, err := readLoggerProperties(fs)
	if err != nil {
		return err
	}

	l.file = &lumberjack.Logger{
		Filename:   p.logFilename,
		MaxSize:    cast.ToInt(p.maxSize),
		MaxBackups: cast.ToInt(p.maxBackups),
		MaxAge:     cast.ToInt(p.maxAge),
		Compress:   cast.ToBool(p.compressFlag),
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(l.file)
	logrus.SetLevel(parseLevel(p.level))

	l.entry = logrus.WithField("session", session)
	l.echo = echo
	return nil
}

func parseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Debug":
		return logrus.DebugLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// Close 關閉紀錄檔
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) print(prefix, message string) {
	if l.echo != nil {
		fmt.Fprintln(l.echo, prefix, message)
	}
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
	l.print("Info:", message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
	l.print("Error:", message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
	l.print("Debug:", message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
	l.print("Warn:", message)
}

func (l *Logger) Fatal(message string) {
	l.print("Fatal:", message)
	l.entry.Fatal(message)
}
