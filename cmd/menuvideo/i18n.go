// Package main provides localization for the menuvideo CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Play a video as the menu background":            "動画をメニューの背景として再生",
		"YAML configuration file":                        "YAML設定ファイル",
		"Directory holding the frames folder":            "フレームフォルダを置くディレクトリ",
		"Frames per second for extraction and playback":  "抽出と再生のフレームレート",
		"Log level (debug, info, warn, error)":           "ログレベル (debug, info, warn, error)",
		"Suppress all log output":                        "すべてのログ出力を抑制",

		// Generate command
		"Extract frames from the background video": "背景動画からフレームを抽出",
		"Source video path":                        "元動画のパス",
		"Path to the ffmpeg executable":            "ffmpeg実行ファイルのパス",

		// Play command
		"Play the extracted frames on a headless menu":       "抽出したフレームをヘッドレスのメニューで再生",
		"Stop after this long (0 runs until interrupted)":    "指定時間後に停止 (0 は中断まで実行)",
		"Write the last displayed frame as PNG to this path": "最後に表示したフレームをPNGとして保存",
		"Resize the snapshot to this width":                  "スナップショットをこの幅に縮小",
		"Serve Prometheus metrics on this address":           "このアドレスでPrometheusメトリクスを公開",

		// Info command
		"Show the frames folder and source video": "フレームフォルダと元動画の情報を表示",
		"Frames folder: %s":                       "フレームフォルダ: %s",
		"Frames: %d":                              "フレーム数: %d",
		"Loop length at %d fps: %s":               "%d fps でのループ長: %s",
		"Video: %s %s %dx%d, %s":                  "動画: %s %s %dx%d, %s",
		"Video: %s (%s)":                          "動画: %s (%s)",
		"Expected frames at %d fps: %d":           "%d fps での推定フレーム数: %d",

		// Clean command
		"Delete the extracted frames": "抽出したフレームを削除",
	})
}
