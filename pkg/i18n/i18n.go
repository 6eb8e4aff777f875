// Package i18n holds the localized user-facing strings for gitmsg. The
// tables are plain process-wide data, populated at init and never mutated.
package i18n

import "fmt"

// Lang selects the output language for CLI messages and for the generated
// commit subject.
type Lang string

const (
	LangEN Lang = "en"
	LangZH Lang = "zh"
)

// DefaultLang is used when no --lang option is given.
const DefaultLang = LangEN

// ParseLang validates a --lang value.
func ParseLang(value string) (Lang, bool) {
	switch Lang(value) {
	case LangEN, LangZH:
		return Lang(value), true
	}
	return DefaultLang, false
}

// SubjectLanguage names the natural language the generated subject should be
// written in, as spelled inside the prompt.
func (l Lang) SubjectLanguage() string {
	if l == LangZH {
		return "Simplified Chinese"
	}
	return "English"
}

// Key identifies one localized message.
type Key string

const (
	KeyNotRepo       Key = "err_not_repo"
	KeyStatusFailed  Key = "err_status"
	KeyDiffFailed    Key = "err_diff"
	KeyNoAPIKey      Key = "err_no_api_key"
	KeyExhausted     Key = "err_exhausted"
	KeyUsage         Key = "err_usage"
	KeyUsageHint     Key = "usage_hint"
	KeyInvalidLang   Key = "err_invalid_lang"
	KeyNoChanges     Key = "no_changes"
	KeyChangesHeader Key = "changes_header"
	KeyGenerating    Key = "generating"
	KeySuggestion    Key = "suggestion"
	KeyCopied        Key = "copied"
	KeyClipboardWarn Key = "clipboard_warn"
	KeyHelp          Key = "help"
)

var messages = map[Lang]map[Key]string{
	LangEN: {
		KeyNotRepo:       "not a git repository (or any of the parent directories)",
		KeyStatusFailed:  "failed to read repository status: %v",
		KeyDiffFailed:    "failed to read diffs: %v",
		KeyNoAPIKey:      "no API key found (set GITMSG_API_KEY, OPENAI_API_KEY or OPENAI_KEY)",
		KeyExhausted:     "failed to generate a valid commit message after %d attempts",
		KeyUsage:         "invalid usage: %v",
		KeyUsageHint:     "run 'gitmsg --help' for usage",
		KeyInvalidLang:   "unsupported language %q (supported: en, zh)",
		KeyNoChanges:     "nothing to commit, working tree clean",
		KeyChangesHeader: "Detected changes:",
		KeyGenerating:    "Generating commit message...",
		KeySuggestion:    "Suggested commit command:",
		KeyCopied:        "(copied to clipboard)",
		KeyClipboardWarn: "warning: could not copy to clipboard: %v",
		KeyHelp: `gitmsg - draft a conventional commit message from your working tree

gitmsg inspects the pending changes in the current git repository, asks an
LLM for a single conventional commit header, validates it against the commit
grammar, and prints a ready-to-run git commit command (also copied to the
clipboard when possible).

Usage:
  gitmsg [options]

Options:
  -l, --lang <en|zh>   output language for messages and the commit subject (default en)
      --no-spinner     disable the spinner while the generator runs
  -h, --help           show this help and exit

Environment:
  GITMSG_API_KEY / OPENAI_API_KEY / OPENAI_KEY   API key, first set wins
  OPENAI_BASE_URL                                API base URL override
  GITMSG_MODEL                                   model name (default gpt-4o-mini)`,
	},
	LangZH: {
		KeyNotRepo:       "当前目录不是 git 仓库",
		KeyStatusFailed:  "读取仓库状态失败: %v",
		KeyDiffFailed:    "读取差异失败: %v",
		KeyNoAPIKey:      "未找到 API 密钥（请设置 GITMSG_API_KEY、OPENAI_API_KEY 或 OPENAI_KEY）",
		KeyExhausted:     "尝试 %d 次后仍未能生成合法的提交信息",
		KeyUsage:         "参数错误: %v",
		KeyUsageHint:     "运行 'gitmsg --help' 查看用法",
		KeyInvalidLang:   "不支持的语言 %q（支持: en、zh）",
		KeyNoChanges:     "没有待提交的变更，工作区是干净的",
		KeyChangesHeader: "检测到以下变更:",
		KeyGenerating:    "正在生成提交信息...",
		KeySuggestion:    "建议的提交命令:",
		KeyCopied:        "（已复制到剪贴板）",
		KeyClipboardWarn: "警告: 复制到剪贴板失败: %v",
		KeyHelp: `gitmsg - 根据工作区变更生成符合规范的提交信息

gitmsg 检查当前 git 仓库的待提交变更，调用 LLM 生成一条符合约定式提交
规范的提交信息，校验通过后输出可直接执行的 git commit 命令（并在可能时
复制到剪贴板）。

用法:
  gitmsg [选项]

选项:
  -l, --lang <en|zh>   输出语言，同时决定提交信息的语言（默认 en）
      --no-spinner     生成时不显示进度动画
  -h, --help           显示帮助并退出

环境变量:
  GITMSG_API_KEY / OPENAI_API_KEY / OPENAI_KEY   API 密钥，按顺序取第一个
  OPENAI_BASE_URL                                API 地址覆盖
  GITMSG_MODEL                                   模型名（默认 gpt-4o-mini）`,
	},
}

// kindLabels maps a ChangeKind name to its localized summary label.
var kindLabels = map[Lang]map[string]string{
	LangEN: {
		"added":      "added",
		"modified":   "modified",
		"deleted":    "deleted",
		"renamed":    "renamed",
		"copied":     "copied",
		"unmerged":   "unmerged",
		"untracked":  "untracked",
		"ignored":    "ignored",
		"typechange": "typechange",
		"other":      "other",
	},
	LangZH: {
		"added":      "新增",
		"modified":   "修改",
		"deleted":    "删除",
		"renamed":    "重命名",
		"copied":     "复制",
		"unmerged":   "冲突",
		"untracked":  "未跟踪",
		"ignored":    "已忽略",
		"typechange": "类型变更",
		"other":      "其他",
	},
}

// T returns the localized message for key, falling back to English when the
// language has no entry.
func T(lang Lang, key Key) string {
	if table, ok := messages[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	return messages[LangEN][key]
}

// Tf is T with fmt.Sprintf formatting.
func Tf(lang Lang, key Key, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// KindLabel returns the localized label for a ChangeKind name.
func KindLabel(lang Lang, kind string) string {
	if table, ok := kindLabels[lang]; ok {
		if label, ok := table[kind]; ok {
			return label
		}
	}
	return kindLabels[LangEN][kind]
}
