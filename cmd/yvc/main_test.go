package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/John-Robertt/YVC/internal/domain"
)

func TestParseArgs(t *testing.T) {
	ca, err := parseArgs([]string{"some/dir", "--exclude", "vendor", "--exclude=tmp", "--json"})
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if ca.Path != "some/dir" || !ca.JSON {
		t.Fatalf("解析结果不正确：%+v", ca)
	}
	if len(ca.ExcludeDirs) != 2 || ca.ExcludeDirs[0] != "vendor" || ca.ExcludeDirs[1] != "tmp" {
		t.Fatalf("exclude 解析不正确：%v", ca.ExcludeDirs)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	cases := [][]string{
		{"--exclude"},
		{"--exclude="},
		{"--unknown"},
		{"a", "b"},
	}
	for _, args := range cases {
		if _, err := parseArgs(args); err == nil {
			t.Fatalf("期望参数错误：%v", args)
		}
	}
}

func TestEmitText_MixedResults(t *testing.T) {
	rr := domain.RunReport{
		Path: "/scan/root",
		Items: []domain.FileResult{
			{Path: "a.yaml", Status: domain.StatusValid},
			{Path: "b.yml", Status: domain.StatusInvalid, ErrorCode: domain.ErrCodeParseFailed, ErrorMsg: "yaml: line 1: did not find expected ',' or ']'"},
		},
	}
	rr.Finalize()

	var buf bytes.Buffer
	emitText(&buf, rr)
	out := buf.String()

	for _, want := range []string{
		"✅ a.yaml",
		"❌ b.yml",
		"   错误：yaml: line 1:",
		"📊 结果：1 个有效，1 个无效",
		"❌ 存在语法错误的 YAML 文件",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("输出缺少 %q：\n%s", want, out)
		}
	}
	// invalid 的错误行必须缩进在文件行之后。
	if strings.Index(out, "❌ b.yml") > strings.Index(out, "   错误：") {
		t.Fatalf("错误行必须紧跟在失败文件行之后：\n%s", out)
	}
}

func TestEmitText_NoFiles(t *testing.T) {
	rr := domain.RunReport{Path: "/scan/root"}
	rr.Finalize()

	var buf bytes.Buffer
	emitText(&buf, rr)
	out := buf.String()

	if !strings.Contains(out, "❌ 未找到 YAML 文件") {
		t.Fatalf("零文件必须显式报告：\n%s", out)
	}
	if strings.Contains(out, "📊") {
		t.Fatalf("零文件时不应输出统计行：\n%s", out)
	}
}

func TestEmitText_AllValid(t *testing.T) {
	rr := domain.RunReport{
		Path: "/scan/root",
		Items: []domain.FileResult{
			{Path: "a.yaml", Status: domain.StatusValid},
			{Path: "b.yml", Status: domain.StatusValid},
		},
	}
	rr.Finalize()

	var buf bytes.Buffer
	emitText(&buf, rr)
	out := buf.String()

	if !strings.Contains(out, "📊 结果：2 个有效，0 个无效") {
		t.Fatalf("统计行不正确：\n%s", out)
	}
	if !strings.Contains(out, "✅ 所有 YAML 文件均有效！") {
		t.Fatalf("缺少全部有效的结论行：\n%s", out)
	}
}
