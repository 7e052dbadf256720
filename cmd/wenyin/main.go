package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/wenyin/wenyin/internal/config"
	"github.com/wenyin/wenyin/internal/document"
	"github.com/wenyin/wenyin/internal/logger"
	"github.com/wenyin/wenyin/internal/tts"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		text         = flag.String("text", "", "要合成的中文文本")
		file         = flag.String("file", "", "输入文本文件路径（UTF-8）")
		output       = flag.String("output", "", "输出 WAV 文件路径")
		profileName  = flag.String("profile", "", "音色档位: default、female、male")
		engineName   = flag.String("engine", "", "覆盖配置中的合成引擎: edge、tencent、sherpa、piper")
		configPath   = flag.String("config", "configs/wenyin.yaml", "配置文件路径")
		listOptions  = flag.Bool("list-options", false, "列出全部可用选项后退出")
		listProfiles = flag.Bool("list-profiles", false, "列出音色档位后退出")
		runTest      = flag.Bool("test", false, "用选定档位运行冒烟测试后退出")
		runTestAll   = flag.Bool("test-all", false, "对全部档位运行冒烟测试后退出")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		return 1
	}
	if *engineName != "" {
		cfg.TTS.Engine = *engineName
	}

	if err := logger.Init(logger.Config{Level: cfg.Log.Level, File: cfg.Log.File}); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		return 1
	}
	defer logger.Sync()

	// 信息类模式直接输出并退出
	if *listProfiles {
		printProfiles()
		return 0
	}
	if *listOptions {
		printOptions(cfg)
		return 0
	}

	// 档位在任何后端调用之前校验
	profile, err := tts.ParseProfile(*profileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Warnf("[main] 收到信号 %v，正在中止...", sig)
		cancel()
	}()

	if *runTest || *runTestAll {
		profiles := []tts.Profile{profile}
		if *runTestAll {
			profiles = tts.Profiles()
		}
		return selfTest(ctx, cfg, profiles)
	}

	req := &document.Request{
		Text:       *text,
		FilePath:   *file,
		OutputPath: *output,
		Profile:    profile,
	}
	if err := req.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		flag.Usage()
		return 2
	}

	return synthesize(ctx, cfg, req)
}

// synthesize 加载输入文本并执行整篇合成。
func synthesize(ctx context.Context, cfg *config.Config, req *document.Request) int {
	input, err := req.LoadText()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	engine, err := tts.New(&cfg.TTS, req.Profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化 TTS 引擎失败: %v\n", err)
		return 1
	}
	if closer, ok := engine.(io.Closer); ok {
		defer closer.Close()
	}

	processor := document.NewProcessor(engine, cfg.Document.MaxChunkChars)
	stats, err := processor.Process(ctx, input, req.OutputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "合成失败: %v\n", err)
		return 1
	}

	fmt.Printf("已生成 %s（%d 段，%d 字，时长 %.1f 秒）\n",
		req.OutputPath, stats.Chunks, stats.Runes, stats.Duration.Seconds())
	return 0
}

// selfTest 对给定档位运行冒烟测试并逐项报告结果。
func selfTest(ctx context.Context, cfg *config.Config, profiles []tts.Profile) int {
	factory := func(p tts.Profile) (tts.Engine, error) {
		return tts.New(&cfg.TTS, p)
	}

	results := document.SelfTest(ctx, factory, profiles)
	failed := 0
	for _, r := range results {
		if r.OK() {
			fmt.Printf("PASS  %-8s (%.1fs)\n", r.Profile, r.Elapsed.Seconds())
		} else {
			fmt.Printf("FAIL  %-8s %v\n", r.Profile, r.Err)
			failed++
		}
	}
	if failed > 0 {
		fmt.Printf("%d/%d 个档位测试失败\n", failed, len(results))
		return 1
	}
	fmt.Printf("%d 个档位测试全部通过\n", len(results))
	return 0
}

func printProfiles() {
	for _, p := range tts.Profiles() {
		fmt.Println(p)
	}
}

func printOptions(cfg *config.Config) {
	fmt.Println("可用选项:")
	fmt.Printf("  音色档位: default, female, male\n")
	fmt.Printf("  合成引擎: edge, tencent, sherpa, piper（当前: %s）\n", cfg.TTS.Engine)
	fmt.Printf("  edge 语音: default=%s female=%s male=%s\n",
		cfg.TTS.Edge.DefaultVoice, cfg.TTS.Edge.FemaleVoice, cfg.TTS.Edge.MaleVoice)
	fmt.Printf("  tencent 音色: default=%d female=%d male=%d（区域: %s）\n",
		cfg.TTS.Tencent.DefaultVoice, cfg.TTS.Tencent.FemaleVoice, cfg.TTS.Tencent.MaleVoice,
		cfg.TTS.Tencent.Region)
	sherpaModel := cfg.TTS.Sherpa.ModelDir
	if sherpaModel == "" {
		sherpaModel = "（未配置）"
	}
	fmt.Printf("  sherpa 说话人: default=%d female=%d male=%d（模型目录: %s）\n",
		cfg.TTS.Sherpa.DefaultSpeaker, cfg.TTS.Sherpa.FemaleSpeaker, cfg.TTS.Sherpa.MaleSpeaker,
		sherpaModel)
	piperModel := cfg.TTS.Piper.DefaultModel
	if piperModel == "" {
		piperModel = "（未配置）"
	}
	fmt.Printf("  piper 模型: %s\n", piperModel)
	fmt.Printf("  语速: %.1f\n", cfg.TTS.Speed)
}
