package config

import (
	"reflect"
	"sync"
	"time"
)

// keyWatcher 维护按 key 订阅的变更通道及其基线值。
// 并发安全；loader 在重载后调用 changed 做差异分发。
type keyWatcher struct {
	mu   sync.Mutex
	subs map[string][]chan Event
	last map[string]any
}

func newKeyWatcher() *keyWatcher {
	return &keyWatcher{
		subs: make(map[string][]chan Event),
		last: make(map[string]any),
	}
}

// subscribe 注册一个新的订阅通道并记录当前值作为基线。
func (w *keyWatcher) subscribe(key string, current any) chan Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	ch := make(chan Event, 10)
	w.subs[key] = append(w.subs[key], ch)
	w.last[key] = current
	return ch
}

// unsubscribe 移除通道并关闭；key 的最后一个订阅者退订后清理基线。
func (w *keyWatcher) unsubscribe(key string, ch chan Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	chans := w.subs[key]
	for i, c := range chans {
		if c == ch {
			w.subs[key] = append(chans[:i], chans[i+1:]...)
			close(ch)
			break
		}
	}
	if len(w.subs[key]) == 0 {
		delete(w.subs, key)
		delete(w.last, key)
	}
}

// snapshot 用当前配置值刷新所有已订阅 key 的基线。
func (w *keyWatcher) snapshot(get func(string) any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for key := range w.subs {
		w.last[key] = get(key)
	}
}

// changed 对比基线并向订阅者分发变更事件，返回发生变更的 key。
// 通道缓冲已满时丢弃事件，不阻塞重载路径。
func (w *keyWatcher) changed(get func(string) any) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var changedKeys []string
	for key, channels := range w.subs {
		newValue := get(key)
		oldValue := w.last[key]
		if reflect.DeepEqual(oldValue, newValue) {
			continue
		}

		w.last[key] = newValue
		changedKeys = append(changedKeys, key)

		event := Event{
			Key:       key,
			Value:     newValue,
			OldValue:  oldValue,
			Source:    "file",
			Timestamp: time.Now(),
		}
		for _, ch := range channels {
			select {
			case ch <- event:
			default:
			}
		}
	}
	return changedKeys
}
