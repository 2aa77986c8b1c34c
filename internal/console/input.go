package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bazaar-next/internal/models"
)

// Prompter 控制台输入读取器
// 数字类读取遇到非法输入原地重试，不向上传播格式错误；
// 输入流耗尽（EOF）时 ok=false，由菜单层按退出处理
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter 创建输入读取器
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine 读取一行文本（去除首尾空白）
func (p *Prompter) ReadLine(label string) (string, bool) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.scanner.Text()), true
}

// ReadInt 读取整数，非数字输入重试
func (p *Prompter) ReadInt(label string) (int, bool) {
	for {
		line, ok := p.ReadLine(label)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "输入无效，请输入数字。")
			continue
		}
		return value, true
	}
}

// ReadUint64 读取ID类正整数，非法输入重试
func (p *Prompter) ReadUint64(label string) (uint64, bool) {
	for {
		line, ok := p.ReadLine(label)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			fmt.Fprintln(p.out, "输入无效，请输入数字。")
			continue
		}
		return value, true
	}
}

// ReadFloat 读取小数，非法输入重试
func (p *Prompter) ReadFloat(label string) (float64, bool) {
	for {
		line, ok := p.ReadLine(label)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(p.out, "输入无效，请输入数字。")
			continue
		}
		return value, true
	}
}

// ReadMoney 读取金额，非法输入重试
func (p *Prompter) ReadMoney(label string) (models.Money, bool) {
	for {
		line, ok := p.ReadLine(label)
		if !ok {
			return models.Money{}, false
		}
		value, err := models.ParseMoney(line)
		if err != nil {
			fmt.Fprintln(p.out, "输入无效，请输入金额。")
			continue
		}
		return value, true
	}
}
