// Package languages 提供可选的语言显示名称列表。
package languages

import (
	_ "embed"
	"fmt"
	"sync"

	"smarttranslate/types"

	"github.com/bytedance/sonic"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

//go:embed languages.json
var languagesJSON []byte

// Catalog 按本地化规则排序后的语言名称列表，创建后只读
type Catalog struct {
	names []string
	index map[string]struct{}
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// New 复制并排序给定名称，不去重也不过滤
func New(names []string) *Catalog {
	sorted := make([]string, len(names))
	copy(sorted, names)
	SortNames(sorted)

	index := make(map[string]struct{}, len(sorted))
	for _, name := range sorted {
		index[name] = struct{}{}
	}
	return &Catalog{names: sorted, index: index}
}

// Parse 解析 {"langs":[{"name":...}]} 格式的数据
func Parse(data []byte) (*Catalog, error) {
	var file types.LanguageFile
	if err := sonic.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("解析语言列表失败: %w", err)
	}

	names := make([]string, 0, len(file.Langs))
	for _, lang := range file.Langs {
		names = append(names, lang.Name)
	}
	return New(names), nil
}

// Default 内置语言列表，首次调用时加载
// 内置数据损坏属于构建缺陷，直接panic
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(languagesJSON)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// SortNames 原地按英文区域规则、忽略大小写升序排序
func SortNames(names []string) {
	// Collator 不是并发安全的，每次排序单独创建
	c := collate.New(language.English, collate.IgnoreCase)
	c.SortStrings(names)
}

// Names 返回排序后的名称副本
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Contains 判断名称是否在列表中（精确匹配）
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Len 名称数量
func (c *Catalog) Len() int {
	return len(c.names)
}
