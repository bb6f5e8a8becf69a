package host

import (
	"sync"

	"smarttranslate/types"
)

// Event 宿主原语调用记录
type Event struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

// 事件类型
const (
	EventPaste   = "paste"
	EventCopy    = "copy"
	EventSuccess = "success"
	EventNotice  = "notice"
)

// Recorder 记录所有输出的宿主，用于HTTP服务和测试
type Recorder struct {
	mods   types.Modifiers
	mutex  sync.Mutex
	events []Event
}

// NewRecorder 创建带固定修饰键的记录宿主
func NewRecorder(mods types.Modifiers) *Recorder {
	return &Recorder{mods: mods}
}

func (r *Recorder) Modifiers() types.Modifiers {
	return r.mods
}

func (r *Recorder) PasteText(text string) {
	r.record(Event{Kind: EventPaste, Text: text})
}

func (r *Recorder) CopyText(text string) {
	r.record(Event{Kind: EventCopy, Text: text})
}

func (r *Recorder) ShowSuccess() {
	r.record(Event{Kind: EventSuccess})
}

func (r *Recorder) ShowText(text string) {
	r.record(Event{Kind: EventNotice, Text: text})
}

func (r *Recorder) record(e Event) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.events = append(r.events, e)
}

// Events 按调用顺序返回记录副本
func (r *Recorder) Events() []Event {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
