package logger

import (
	"log"
	"os"
)

// Global loggerlar
var (
	InfoLogger  *log.Logger
	ErrorLogger *log.Logger
)

// Init loggerlarni ishga tushirish
func Init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}
