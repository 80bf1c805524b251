// Copyright © 2025 tjj
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package adapt

import (
	"reflect"
	"regexp"
	"strings"
	"time"
)

// DateFormat 日期格式：用于识别的正则、SimpleDateFormat 风格的名称与对应的 Go layout
type DateFormat struct {
	Regexp  *regexp.Regexp
	Pattern string
	Layout  string
}

func dateFormat(expr, pattern, layout string) DateFormat {
	return DateFormat{Regexp: regexp.MustCompile(expr), Pattern: pattern, Layout: layout}
}

// 按优先级排列，第一个匹配的生效，不能换成 map。
// 日与月用 "2"、"1"，允许一位或两位数字；紧凑格式用定长的 "02"、"01"
var dateFormats = []DateFormat{
	dateFormat(`^\d{8}$`, "yyyyMMdd", "20060102"),
	dateFormat(`^\d{1,2}-\d{1,2}-\d{4}$`, "dd-MM-yyyy", "2-1-2006"),
	dateFormat(`^\d{4}-\d{1,2}-\d{1,2}$`, "yyyy-MM-dd", "2006-1-2"),
	dateFormat(`^\d{1,2}/\d{1,2}/\d{4}$`, "MM/dd/yyyy", "1/2/2006"),
	dateFormat(`^\d{4}/\d{1,2}/\d{1,2}$`, "yyyy/MM/dd", "2006/1/2"),
	dateFormat(`^\d{1,2}\s[a-z]{3}\s\d{4}$`, "dd MMM yyyy", "2 Jan 2006"),
	dateFormat(`^\d{1,2}\s[a-z]{4,}\s\d{4}$`, "dd MMMM yyyy", "2 January 2006"),
	dateFormat(`^\d{12}$`, "yyyyMMddHHmm", "200601021504"),
	dateFormat(`^\d{8}\s\d{4}$`, "yyyyMMdd HHmm", "20060102 1504"),
	dateFormat(`^\d{1,2}-\d{1,2}-\d{4}\s\d{1,2}:\d{2}$`, "dd-MM-yyyy HH:mm", "2-1-2006 15:04"),
	dateFormat(`^\d{4}-\d{1,2}-\d{1,2}\s\d{1,2}:\d{2}$`, "yyyy-MM-dd HH:mm", "2006-1-2 15:04"),
	dateFormat(`^\d{1,2}/\d{1,2}/\d{4}\s\d{1,2}:\d{2}$`, "MM/dd/yyyy HH:mm", "1/2/2006 15:04"),
	dateFormat(`^\d{4}/\d{1,2}/\d{1,2}\s\d{1,2}:\d{2}$`, "yyyy/MM/dd HH:mm", "2006/1/2 15:04"),
	dateFormat(`^\d{1,2}\s[a-z]{3}\s\d{4}\s\d{1,2}:\d{2}$`, "dd MMM yyyy HH:mm", "2 Jan 2006 15:04"),
	dateFormat(`^\d{1,2}\s[a-z]{4,}\s\d{4}\s\d{1,2}:\d{2}$`, "dd MMMM yyyy HH:mm", "2 January 2006 15:04"),
	dateFormat(`^\d{14}$`, "yyyyMMddHHmmss", "20060102150405"),
	dateFormat(`^\d{8}\s\d{6}$`, "yyyyMMdd HHmmss", "20060102 150405"),
	dateFormat(`^\d{1,2}-\d{1,2}-\d{4}\s\d{1,2}:\d{2}:\d{2}$`, "dd-MM-yyyy HH:mm:ss", "2-1-2006 15:04:05"),
	dateFormat(`^\d{4}-\d{1,2}-\d{1,2}\s\d{1,2}:\d{2}:\d{2}$`, "yyyy-MM-dd HH:mm:ss", "2006-1-2 15:04:05"),
	dateFormat(`^\d{1,2}/\d{1,2}/\d{4}\s\d{1,2}:\d{2}:\d{2}$`, "MM/dd/yyyy HH:mm:ss", "1/2/2006 15:04:05"),
	dateFormat(`^\d{4}/\d{1,2}/\d{1,2}\s\d{1,2}:\d{2}:\d{2}$`, "yyyy/MM/dd HH:mm:ss", "2006/1/2 15:04:05"),
	dateFormat(`^\d{1,2}\s[a-z]{3}\s\d{4}\s\d{1,2}:\d{2}:\d{2}$`, "dd MMM yyyy HH:mm:ss", "2 Jan 2006 15:04:05"),
	dateFormat(`^\d{1,2}\s[a-z]{4,}\s\d{4}\s\d{1,2}:\d{2}:\d{2}$`, "dd MMMM yyyy HH:mm:ss", "2 January 2006 15:04:05"),
}

// DateFormats 返回日期格式表的拷贝，顺序即匹配优先级
func DateFormats() []DateFormat {
	formats := make([]DateFormat, len(dateFormats))
	copy(formats, dateFormats)
	return formats
}

// DetectDateFormat 按优先级找到第一个与文本（转小写后）匹配的日期格式
func DetectDateFormat(text string) (DateFormat, bool) {
	lower := strings.ToLower(text)
	for _, format := range dateFormats {
		if format.Regexp.MatchString(lower) {
			return format, true
		}
	}
	return DateFormat{}, false
}

// ParseDate 识别格式后严格解析，越界的字段（如 32 号）不会进位，直接失败。
// 格式无法识别或解析失败时返回 false
func ParseDate(text string, loc *time.Location) (time.Time, bool) {
	format, ok := DetectDateFormat(text)
	if !ok {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(format.Layout, text, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (r *Registry) stringToDate(from any, _ reflect.Type) (any, error) {
	text, ok := textOf(from)
	if !ok {
		return nil, nil
	}
	t, ok := ParseDate(text, r.location)
	if !ok {
		return nil, nil
	}
	return t, nil
}
