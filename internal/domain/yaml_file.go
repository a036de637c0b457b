package domain

// YAMLFile 描述一次扫描得到的 YAML 文件（只做 stat，不读内容）。
//
// 不变量（实现必须遵守）：
// - AbsPath 必须是 clean + absolute
// - RelPath 相对扫描根目录，用于一切对外输出
// - 扫描阶段只做 stat，不读文件内容
type YAMLFile struct {
	AbsPath string
	RelPath string
	Size    int64
	ModUnix int64
}
