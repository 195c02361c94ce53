package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Regeneration
		"Starting regeneration":               "背景フレームの再生成を開始します",
		"Regeneration completed successfully": "再生成が正常に完了しました",
		"Interrupted, shutting down...":       "中断されました。シャットダウン中...",

		// Probe stage
		"Source video: %s %dx%d, %s":         "元動画: %s %dx%d, %s",
		"Could not read video metadata: %s": "動画のメタデータを読み取れませんでした: %s",

		// Prepare stage
		"Frames folder ready: %s": "フレームフォルダの準備ができました: %s",

		// Extract stage
		"Running %s %v":                   "%s %v を実行中",
		"Extracting frames: %d/%d (%d%%)": "フレーム抽出中: %d/%d (%d%%)",
		"Extracting frames: %d":           "フレーム抽出中: %d",
		"Extracted %d frames in %s":       "%d フレームを %s で抽出しました",

		// Frame store
		"Discovered %d frames in %s":        "%[2]s に %[1]d フレームが見つかりました",
		"Frames directory %s does not exist": "フレームフォルダ %s は存在しません",
		"Evicted %d cached frames":          "キャッシュから %d フレームを破棄しました",
		"Removed %d frames from %s":         "%[2]s から %[1]d フレームを削除しました",

		// Texture cache
		"Discarding texture for %s evicted during load": "読み込み中に破棄された %s のテクスチャを捨てます",

		// Playback
		"Initializing scheduler (fps: %s, frameCount: %d)": "スケジューラを初期化中 (fps: %s, フレーム数: %d)",
		"Playback detached":                                "再生を停止しました",
		"Applying background to node \"%s\"":               "ノード \"%s\" に背景を適用中",
		"Played %d frames, last frame %d":                  "%d フレームを再生しました。最終フレーム %d",
		"Snapshot saved to %s":                             "スナップショットを %s に保存しました",

		// Host loop
		"Main loop started (resolution: %s)": "メインループを開始しました (分解能: %s)",
		"Main loop stopped":                  "メインループを停止しました",

		// Metrics
		"Metrics server listening on %s": "メトリクスサーバーを %s で待ち受け中",

		// Alerts
		"An error has occurred!": "エラーが発生しました!",
		"Executing...":           "実行中...",
		"Done":                   "完了",
		"Please install FFmpeg and add it to your system environment variables: https://ffmpeg.org/download.html": "FFmpegをインストールし、システムの環境変数に追加してください: https://ffmpeg.org/download.html",
		"Failed to load video background file: Path does not exist":                                         "背景動画ファイルを読み込めません: パスが存在しません",
		"Failed to delete folder \"%s\" with error \"%s\"":                                                   "フォルダ \"%s\" の削除に失敗しました: \"%s\"",
		"Failed to create folder \"%s\" with error \"%s\"":                                                   "フォルダ \"%s\" の作成に失敗しました: \"%s\"",
		"Extracting frames, the new background shows the next time the menu opens":                         "フレームを抽出中です。新しい背景は次にメニューを開いたときに表示されます",
		"Extracted %d frames":                                                                               "%d フレームを抽出しました",
		"Failed to find background image":                                                                   "背景画像が見つかりません",

		// Warnings
		"Failed to read frames: %s":             "フレームの読み取りに失敗しました: %s",
		"Failed to load texture at frame %d: %s": "フレーム %d のテクスチャ読み込みに失敗しました: %s",
		"Background not applied: %s":            "背景を適用できませんでした: %s",

		// Errors
		"FFmpeg is not available":             "FFmpegが利用できません",
		"Failed to load video %s: %s":         "動画 %s の読み込みに失敗しました: %s",
		"Failed to prepare frames folder: %s": "フレームフォルダの準備に失敗しました: %s",
		"Failed to extract frames: %s":        "フレームの抽出に失敗しました: %s",
		"Failed to delete %s: %s":             "%s の削除に失敗しました: %s",
		"Metrics server error: %s":            "メトリクスサーバーのエラー: %s",
	})
}
