package validate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/John-Robertt/YVC/internal/domain"
)

// File 校验单个文件的 YAML 语法，返回该文件的最终结论。
//
// 约束（硬）：
// - 任何单文件失败都被吞在 FileResult 里，绝不向上抛错误（一个坏文件不能阻断其余文件）
// - 语法错误 => parse_failed，消息来自解析器（yaml.v3 自带行号上下文）
// - 读取等其他失败 => io_failed，消息带“未预期的错误”前缀
// - 解析用安全语义：只构造纯标量/序列/映射，不实例化任意 tag
func File(relPath, absPath string) domain.FileResult {
	res := domain.FileResult{
		Path:   relPath,
		Status: domain.StatusValid,
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		res.Status = domain.StatusInvalid
		res.ErrorCode = domain.ErrCodeIOFailed
		res.ErrorMsg = fmt.Sprintf("未预期的错误：%v", err)
		return res
	}

	if err := parseSingleDocument(data); err != nil {
		res.Status = domain.StatusInvalid
		res.ErrorCode = domain.ErrCodeParseFailed
		res.ErrorMsg = err.Error()
	}
	return res
}

// parseSingleDocument 按“单文档”契约解析：
// - 空内容 / 仅 null / 任意良构值都算有效
// - 流里出现第二个文档 => 错误（与单文档 safe load 语义一致）
//
// 解码目标是 yaml.Node：只检查语法，不做任何 schema 级映射。
// tag 解析失败也不在范围内：带任意 tag（如 !!python/...）的良构文档
// 算有效，这里只回答“语法对不对”，不回答“能不能构造出对象”。
func parseSingleDocument(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// 空文件（或只有注释/空白）：有效。
			return nil
		}
		return err
	}

	var extra yaml.Node
	err := dec.Decode(&extra)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	return errors.New("期望单个 YAML 文档，流中存在多个文档")
}
