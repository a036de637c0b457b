package run

import (
	"time"

	"github.com/John-Robertt/YVC/internal/domain"
	"github.com/John-Robertt/YVC/internal/scan"
	"github.com/John-Robertt/YVC/internal/validate"
)

// Options 是一次运行的全部输入（CLI 解析后直接消费，不再做二次默认判断）。
type Options struct {
	// Root 是扫描根目录，必须已经 clean + absolute。
	Root string
	// ExcludeDirs 来自 CLI --exclude，均视为相对 Root 的路径。
	ExcludeDirs []string
}

// Execute 执行一次扫描 + 逐文件校验，返回定稿后的 RunReport。
//
// 错误分两类：
// - 扫描根目录不可用：致命，通过返回值错误向上传播（报告不可用）
// - 单文件失败（语法/读取）：降级为 item 级结论，绝不中断其余文件
//
// 校验严格串行：每个文件打开、读取、关闭后才进入下一个（单线程契约）。
func Execute(opt Options) (domain.RunReport, error) {
	started := time.Now().UTC()

	rr := domain.RunReport{
		Path:      opt.Root,
		StartedAt: started,
		Items:     make([]domain.FileResult, 0, 64),
	}

	files, err := scan.ScanYAML(opt.Root, opt.ExcludeDirs)
	if err != nil {
		return domain.RunReport{}, err
	}

	for _, f := range files {
		rr.Items = append(rr.Items, validate.File(f.RelPath, f.AbsPath))
	}

	rr.FinishedAt = time.Now().UTC()
	rr.Finalize()
	return rr, nil
}
