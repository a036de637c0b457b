package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/John-Robertt/YVC/internal/domain"
)

// vcsDirName 是版本控制元数据目录名：以目录名整树剪枝，其内容永远不被访问。
const vcsDirName = ".git"

// SkipDirFunc 判定某个目录（按目录名与绝对路径）是否整体跳过。
type SkipDirFunc func(name, absPath string) bool

// IncludeFileFunc 判定某个文件（按文件名）是否纳入结果。
type IncludeFileFunc func(name string) bool

// ScanYAML 扫描 root 下的 YAML 文件，并应用目录排除规则。
//
// 规则（硬约束）：
// - 永久剪枝：任意层级下名为 .git 的目录
// - excludeDirs：均视为相对 root 的路径（若是绝对路径，则按绝对路径处理）
// - 后缀匹配 .yml/.yaml 大小写敏感（.YML 不算）
//
// root 不存在或不可访问时直接返回错误；调用方不应兜底，这是致命错误。
func ScanYAML(root string, excludeDirs []string) ([]domain.YAMLFile, error) {
	root = filepath.Clean(root)
	excluded := buildExcluded(root, excludeDirs)

	skip := func(name, absPath string) bool {
		if name == vcsDirName {
			return true
		}
		return isExcluded(absPath, excluded)
	}

	return Walk(root, skip, isYAMLName)
}

// Walk 是通用的递归下降遍历：目录用 skipDir 剪枝，文件用 include 过滤。
// 返回结果按 RelPath 排序；遍历本身不保证顺序（文件系统相关）。
//
// 错误边界（硬约束）：只有 root 本身不可用才算致命；root 之下的某个
// 子目录/条目读不了，跳过它继续扫其余部分（一个坏目录不能吞掉整份报告）。
func Walk(root string, skipDir SkipDirFunc, include IncludeFileFunc) ([]domain.YAMLFile, error) {
	files := make([]domain.YAMLFile, 0, 64)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// root 出错时 WalkDir 以 d==nil 回调。
			if d == nil || path == root {
				return walkErr
			}
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			// 根目录本身不参与剪枝判断（否则 root 名为 .git 时会扫出空集）。
			if path == root {
				return nil
			}
			if skipDir != nil && skipDir(d.Name(), path) {
				return filepath.SkipDir
			}
			return nil
		}

		if include != nil && !include(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			// 遍历到与 stat 之间文件消失/不可读：跳过该文件，不中断扫描。
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		files = append(files, domain.YAMLFile{
			AbsPath: path,
			RelPath: rel,
			Size:    info.Size(),
			ModUnix: info.ModTime().Unix(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 强制稳定输出，避免不同平台/文件系统行为差异带来的不确定性。
	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

func isYAMLName(name string) bool {
	return strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml")
}

func buildExcluded(root string, excludeDirs []string) []string {
	excluded := make([]string, 0, len(excludeDirs))

	for _, x := range excludeDirs {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		if filepath.IsAbs(x) {
			excluded = append(excluded, filepath.Clean(x))
			continue
		}
		// x 是相对路径：相对 root。
		excluded = append(excluded, filepath.Clean(filepath.Join(root, x)))
	}

	// 排除列表排序后，isExcluded 的行为更可预测（且便于测试）。
	sort.Strings(excluded)
	return excluded
}

func isExcluded(path string, excluded []string) bool {
	path = filepath.Clean(path)
	for _, base := range excluded {
		if isUnder(path, base) {
			return true
		}
	}
	return false
}

func isUnder(path, base string) bool {
	if path == base {
		return true
	}
	sep := string(filepath.Separator)
	return strings.HasPrefix(path, base+sep)
}
