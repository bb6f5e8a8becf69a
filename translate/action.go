// Package translate 实现把选中文本发送给模型并按修饰键输出结果的动作。
package translate

import (
	"context"
	"errors"
	"time"

	"smarttranslate/config"
	"smarttranslate/host"
	"smarttranslate/logger"
	"smarttranslate/metrics"
	"smarttranslate/provider"
	"smarttranslate/types"
	"smarttranslate/utils"
)

// Completer 发送chat补全请求
type Completer interface {
	Complete(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error)
}

// Result 一次成功调用的结果
type Result struct {
	Text string
	Mode OutputMode
}

// Action 翻译动作，无内部可变状态，可并发调用
type Action struct {
	completer Completer
}

// NewAction 创建翻译动作
func NewAction(completer Completer) *Action {
	return &Action{completer: completer}
}

// Execute 执行一次翻译：请求模型，成功时按修饰键输出，失败时通过宿主提示错误
// 返回的错误与提示给用户的内容一致，供调用方决定退出码或状态码
func (a *Action) Execute(ctx context.Context, input types.Input, opts config.Options, h host.Host) (*Result, error) {
	result, err := a.run(ctx, input, opts, h)
	if err != nil {
		metrics.TranslationsTotal.WithLabelValues(opts.ModelOrDefault(), outcomeOf(err)).Inc()
		logger.Warn("翻译失败",
			logger.String("model", opts.ModelOrDefault()),
			logger.Err(err))
		h.ShowText(ErrorInfo(err))
		return nil, err
	}

	metrics.TranslationsTotal.WithLabelValues(opts.ModelOrDefault(), "success").Inc()
	return result, nil
}

func (a *Action) run(ctx context.Context, input types.Input, opts config.Options, h host.Host) (*Result, error) {
	req := BuildRequest(input, opts)
	if req.Messages[1].Content == "" {
		return nil, ErrEmptyInput
	}

	logger.Debug("发送翻译请求",
		logger.String("model", req.Model),
		logger.String("from_lang", opts.FromLang),
		logger.String("to_lang", opts.ToLang),
		logger.String("text_preview", utils.Preview(req.Messages[1].Content, config.LogPreviewMaxLength)))

	start := time.Now()
	resp, err := a.completer.Complete(ctx, req)
	metrics.ProviderDuration.WithLabelValues(req.Model).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	text, err := provider.ReplyText(resp)
	if err != nil {
		return nil, err
	}

	mode := SelectOutput(h.Modifiers())
	dispatch(h, mode, text)

	logger.Info("翻译完成",
		logger.String("model", req.Model),
		logger.String("mode", mode.String()),
		logger.Int("total_tokens", resp.Usage.TotalTokens),
		logger.Duration("elapsed", time.Since(start)))

	return &Result{Text: text, Mode: mode}, nil
}

func dispatch(h host.Host, mode OutputMode, text string) {
	switch mode {
	case PasteOnly:
		h.PasteText(text)
	case CopyOnly:
		h.CopyText(text)
	default:
		h.PasteText(text)
		h.ShowSuccess()
	}
}

func outcomeOf(err error) string {
	if errors.Is(err, ErrEmptyInput) {
		return "empty_input"
	}
	if provider.IsUnexpectedShape(err) {
		return "unexpected_response"
	}
	if _, ok := provider.AsError(err); ok {
		return "provider_error"
	}
	return "transport_error"
}
