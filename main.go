package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smarttranslate/cmd"
	"smarttranslate/logger"

	"github.com/joho/godotenv"
)

func main() {
	// 自动加载.env文件，文件不存在时忽略
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "警告: 无法加载.env文件: %v\n", err)
	}
	// .env 可能设置了 LOG_LEVEL / LOG_FILE
	logger.Reinitialize()
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		if !cmd.IsReported(err) {
			fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		}
		stop()
		logger.Close()
		os.Exit(1)
	}
}
