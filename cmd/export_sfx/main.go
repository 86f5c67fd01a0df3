// export_sfx 把合成的音效导出为 WAV 文件，方便试听和调音
//
// 用法：
//
//	go run ./cmd/export_sfx -out build/sfx
//	go run ./cmd/export_sfx -out build/sfx -only catch
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/decker502/colortag/internal/synth"
)

func main() {
	out := flag.String("out", "sfx", "输出目录")
	only := flag.String("only", "", "只导出指定音效")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Printf("❌ 创建目录失败: %v\n", err)
		os.Exit(1)
	}

	ids := synth.IDs()
	if *only != "" {
		ids = []string{*only}
	}

	failed := 0
	for _, id := range ids {
		path := filepath.Join(*out, id+".wav")
		if err := export(id, path); err != nil {
			fmt.Printf("❌ %s: %v\n", id, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s -> %s\n", id, path)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func export(id, path string) error {
	s, err := synth.Stream(id)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: synth.SampleRate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, s, format); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return nil
}
