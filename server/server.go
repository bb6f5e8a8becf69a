package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"smarttranslate/config"
	"smarttranslate/languages"
	"smarttranslate/logger"
	"smarttranslate/translate"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies 路由依赖
type Dependencies struct {
	Action      *translate.Action
	Options     config.Options
	Catalog     *languages.Catalog
	ClientToken string
}

// NewRouter 创建gin路由
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(MetricsMiddleware())
	r.Use(corsMiddleware())
	// 只对 /v1 开头的端点进行认证，未配置token时不启用
	if deps.ClientToken != "" {
		r.Use(PathBasedAuthMiddleware(deps.ClientToken, []string{"/v1"}))
	}

	h := &handlers{deps: deps}

	r.GET("/health", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/v1/models", h.models)
	r.GET("/v1/languages", h.languages)
	r.POST("/v1/translate", h.translate)

	r.NoRoute(func(c *gin.Context) {
		logger.Warn("访问未知端点", addReqFields(c,
			logger.String("path", c.Request.URL.Path),
			logger.String("method", c.Request.Method))...)
		respondError(c, http.StatusNotFound, "%s", "404 未找到")
	})

	return r
}

// StartServer 启动HTTP服务器，ctx取消时优雅关闭
func StartServer(ctx context.Context, port string, deps Dependencies) error {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = gin.ReleaseMode
	}
	gin.SetMode(ginMode)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        NewRouter(deps),
		ReadTimeout:    config.ServerReadTimeout,
		WriteTimeout:   config.ServerWriteTimeout,
		IdleTimeout:    config.ServerIdleTimeout,
		MaxHeaderBytes: config.MaxHeaderBytes,
	}

	logger.Info("启动SmartTranslate服务器",
		logger.String("port", port),
		logger.Bool("auth_enabled", deps.ClientToken != ""),
		logger.String("model", deps.Options.ModelOrDefault()),
		logger.String("from_lang", deps.Options.FromLang),
		logger.String("to_lang", deps.Options.ToLang))
	logger.Info("可用端点:")
	logger.Info("  GET  /health         - 健康检查")
	logger.Info("  GET  /metrics        - Prometheus指标")
	logger.Info("  GET  /v1/models      - 模型列表")
	logger.Info("  GET  /v1/languages   - 语言列表")
	logger.Info("  POST /v1/translate   - 翻译选中文本")

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("启动服务器失败", logger.Err(err), logger.String("port", port))
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("正在关闭服务器...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("服务器已停止")
	return nil
}

// corsMiddleware CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, x-api-key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
