package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/John-Robertt/YVC/internal/app/run"
	"github.com/John-Robertt/YVC/internal/domain"
)

const separator = "=================================================="

func main() {
	if code := runCmd(os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}

func runCmd(args []string) int {
	for _, a := range args {
		if isHelp(a) {
			printUsage()
			return 0
		}
	}

	ra, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "参数错误：%v\n\n", err)
		printUsage()
		return 2
	}

	root := ra.Path
	if root == "" {
		// 无参运行的固定契约：扫描当前工作目录。
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "读取当前目录失败：%v\n", err)
			return 1
		}
		root = cwd
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "解析路径失败：%v\n", err)
		return 1
	}

	rr, err := run.Execute(run.Options{
		Root:        rootAbs,
		ExcludeDirs: ra.ExcludeDirs,
	})
	if err != nil {
		// 扫描根目录不可用：致命，不走逐文件报告。
		fmt.Fprintf(os.Stderr, "扫描失败：%v\n", err)
		return 1
	}

	if ra.JSON {
		emitJSON(rr)
	} else {
		emitText(os.Stdout, rr)
	}

	if rr.AllValid() {
		return 0
	}
	return 1
}

type cliArgs struct {
	Path        string
	ExcludeDirs []string
	JSON        bool
}

func parseArgs(args []string) (cliArgs, error) {
	ca := cliArgs{}

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--exclude":
			if i+1 >= len(args) {
				return cliArgs{}, fmt.Errorf("--exclude 需要一个值")
			}
			i++
			ca.ExcludeDirs = append(ca.ExcludeDirs, args[i])
		case strings.HasPrefix(a, "--exclude="):
			v := strings.TrimPrefix(a, "--exclude=")
			if v == "" {
				return cliArgs{}, fmt.Errorf("--exclude 不能为空")
			}
			ca.ExcludeDirs = append(ca.ExcludeDirs, v)
		case a == "--json":
			ca.JSON = true
		case strings.HasPrefix(a, "-"):
			return cliArgs{}, fmt.Errorf("未知参数 %q", a)
		default:
			if ca.Path != "" {
				return cliArgs{}, fmt.Errorf("重复的 path：%q 与 %q", ca.Path, a)
			}
			ca.Path = a
		}
	}

	return ca, nil
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}

func printUsage() {
	fmt.Fprint(os.Stdout, `用法：
  yvc [path] [--exclude DIR]... [--json]

参数：
  path        扫描根目录（未指定则扫描当前工作目录）
  --exclude   额外排除的目录（相对 path；可重复；.git 始终排除）
  --json      stdout 只输出一个 RunReport JSON（摘要走 stderr）
  -h, --help  显示帮助

退出码：
  0  至少发现一个 YAML 文件且全部有效
  1  未发现任何 YAML 文件，或存在无效文件，或扫描失败
  2  参数错误
`)
}

// emitText 输出人类可读报告：banner、逐文件一行（失败附缩进错误行）、
// 分隔线、统计行、最终结论行。
func emitText(w io.Writer, rr domain.RunReport) {
	fmt.Fprintf(w, "🔍 校验 YAML 文件：%s\n", rr.Path)
	fmt.Fprintln(w, separator)

	if len(rr.Items) == 0 {
		// 零文件是失败条件，必须显式说出来，不允许静默通过。
		fmt.Fprintln(w, "❌ 未找到 YAML 文件")
		return
	}

	for _, it := range rr.Items {
		if it.Status == domain.StatusValid {
			fmt.Fprintf(w, "✅ %s\n", it.Path)
			continue
		}
		fmt.Fprintf(w, "❌ %s\n", it.Path)
		fmt.Fprintf(w, "   错误：%s\n", it.ErrorMsg)
	}

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "📊 结果：%d 个有效，%d 个无效\n", rr.Summary.Valid, rr.Summary.Invalid)

	if rr.Summary.Invalid > 0 {
		fmt.Fprintln(w, "❌ 存在语法错误的 YAML 文件")
	} else {
		fmt.Fprintln(w, "✅ 所有 YAML 文件均有效！")
	}
}

// emitJSON：stdout 必须且仅输出一个 RunReport JSON（摘要走 stderr）。
func emitJSON(rr domain.RunReport) {
	enc := json.NewEncoder(os.Stdout)
	_ = enc.Encode(rr)
	fmt.Fprintf(os.Stderr, "完成：valid=%d invalid=%d\n", rr.Summary.Valid, rr.Summary.Invalid)
}
