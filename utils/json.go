package utils

import (
	"github.com/bytedance/sonic"
)

// JSON配置
var (
	// FastestConfig 最快的JSON配置，用于性能关键路径
	FastestConfig = sonic.ConfigFastest

	// SafeConfig 标准兼容的JSON配置
	SafeConfig = sonic.ConfigStd
)

// FastMarshal 高性能JSON序列化
func FastMarshal(v interface{}) ([]byte, error) {
	return FastestConfig.Marshal(v)
}

// SafeUnmarshal 安全JSON反序列化（与encoding/json行为一致）
func SafeUnmarshal(data []byte, v interface{}) error {
	return SafeConfig.Unmarshal(data, v)
}
