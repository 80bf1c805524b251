// Copyright © 2025 tjj
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package adapt

import (
	"io"
	"log/slog"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Func 将 from 转为 to 类型的值。返回 nil 表示「没有值」，不是错误
type Func func(from any, to reflect.Type) (any, error)

type Registry struct {
	adapterMap map[pairKey]adapterValue
	mu         sync.RWMutex // 读多写少的场景，sync.RWMutex的效率比sync.Map更高
	resolved   sync.Map     // map[pairKey]*resolution
	generation atomic.Uint64

	location  *time.Location
	logger    *slog.Logger
	noDefault bool
	custom    []adapterValue // 构造时通过 WithAdapter 注册的转换器
}

// Entry 已注册的类型对，用于诊断与文档
type Entry struct {
	From     reflect.Type
	To       reflect.Type
	Disabled bool
}

type Option func(r *Registry)

// NewRegistry 创建新的注册表，默认包含 string 到各标量类型的转换
func NewRegistry(options ...Option) *Registry {
	r := &Registry{
		adapterMap: make(map[pairKey]adapterValue),
		location:   time.Local,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(r)
	}
	if !r.noDefault {
		for _, v := range defaultAdapters(r) {
			r.adapterMap[newPairKey(v.from, v.to)] = v
		}
	}
	// 用户注册的转换覆盖默认转换
	for _, v := range r.custom {
		_ = r.Register(v.from, v.to, v.fn)
	}
	r.custom = nil
	return r
}

var defaultRegistry atomic.Pointer[Registry]

func init() {
	defaultRegistry.Store(NewRegistry())
}

// Default 返回进程级的默认注册表
func Default() *Registry {
	return defaultRegistry.Load()
}

// SetDefault ！！慎用！！替换默认注册表，可以改变默认行为
func SetDefault(r *Registry) {
	if r == nil {
		return
	}
	defaultRegistry.Store(r)
}

// Register 在默认注册表上注册转换函数
func Register(fromType, toType reflect.Type, fn Func) error {
	return Default().Register(fromType, toType, fn)
}

// Lookup 在默认注册表上查找转换函数
func Lookup(fromType, toType reflect.Type) (Func, error) {
	return Default().Lookup(fromType, toType)
}

// Register 注册 fromType 到 toType 的转换函数，已存在时覆盖。指针形式的标量按值类型注册。
// 允许传入 nil 的 fn，表示禁止这两个类型之间的转换（不再走枚举泛化）
func (r *Registry) Register(fromType, toType reflect.Type, fn Func) error {
	if fromType == nil || toType == nil {
		return TypeNotFoundErr
	}
	fromType, toType = Normalize(fromType), Normalize(toType)
	key := newPairKey(fromType, toType)
	r.mu.Lock()
	_, existed := r.adapterMap[key]
	r.adapterMap[key] = adapterValue{from: fromType, to: toType, fn: fn}
	r.mu.Unlock()
	r.generation.Add(1)
	r.logger.Debug("adapter registered",
		slog.String("from", fromType.String()),
		slog.String("to", toType.String()),
		slog.Bool("override", existed),
		slog.Bool("disabled", fn == nil))
	return nil
}

// RegisterFunc 以类型安全的方式注册转换函数
func RegisterFunc[F any, T any](r *Registry, fn func(from F) (to T, err error)) error {
	return r.Register(typeFor[F](), typeFor[T](), wrapFunc(fn))
}

// Entries 返回已注册类型对的快照，按 from、to 的类型名排序
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	entries := make([]Entry, 0, len(r.adapterMap))
	for _, v := range r.adapterMap {
		entries = append(entries, Entry{From: v.from, To: v.to, Disabled: v.fn == nil})
	}
	r.mu.RUnlock()
	sort.Slice(entries, func(i, j int) bool {
		fi, fj := entries[i].From.String(), entries[j].From.String()
		if fi != fj {
			return fi < fj
		}
		return entries[i].To.String() < entries[j].To.String()
	})
	return entries
}

// Location 日期转换使用的时区
func (r *Registry) Location() *time.Location {
	return r.location
}

func wrapFunc[F any, T any](fn func(from F) (to T, err error)) Func {
	if fn == nil {
		return nil
	}
	return func(from any, _ reflect.Type) (any, error) {
		var f F
		if from != nil {
			v, ok := from.(F)
			if !ok {
				// 查找时指针形式的标量已被解引用
				v, ok = box(from, typeFor[F]()).(F)
			}
			if !ok {
				return nil, &AdapterNotFoundError{From: reflect.TypeOf(from), To: typeFor[T]()}
			}
			f = v
		}
		return fn(f)
	}
}

// WithAdapter 注册自定义转换器，会覆盖同类型对的默认转换器。允许传入nil，表示禁止这两个类型之间的转换
func WithAdapter[F any, T any](fn func(from F) (to T, err error)) Option {
	fromType, toType := typeFor[F](), typeFor[T]()
	wrapped := wrapFunc(fn)
	return func(r *Registry) {
		r.custom = append(r.custom, adapterValue{from: fromType, to: toType, fn: wrapped})
	}
}

// WithLocation 日期转换使用的时区，默认 time.Local
func WithLocation(loc *time.Location) Option {
	return func(r *Registry) {
		if loc != nil {
			r.location = loc
		}
	}
}

// WithLogger 设置日志，默认丢弃
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithoutDefaults 不注册默认转换器
func WithoutDefaults() Option {
	return func(r *Registry) {
		r.noDefault = true
	}
}
