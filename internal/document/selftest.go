package document

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/wenyin/wenyin/internal/logger"
	"github.com/wenyin/wenyin/internal/tts"
)

// testSentence 冒烟测试用的固定中文句子。
const testSentence = "你好，这是一个中文语音合成测试。"

// EngineFactory 按音色档位构建合成后端。
type EngineFactory func(profile tts.Profile) (tts.Engine, error)

// TestResult 单个档位的冒烟测试结果。
type TestResult struct {
	Profile tts.Profile
	Elapsed time.Duration
	Err     error
}

// OK 返回该档位测试是否通过。
func (r TestResult) OK() bool { return r.Err == nil }

// SelfTest 对给定档位逐一执行冒烟测试：
// 用固定句子合成到临时文件，校验文件非空后删除。
// 某个档位失败不会中断其余档位的测试。
func SelfTest(ctx context.Context, newEngine EngineFactory, profiles []tts.Profile) []TestResult {
	results := make([]TestResult, 0, len(profiles))
	for _, profile := range profiles {
		start := time.Now()
		err := testProfile(ctx, newEngine, profile)
		results = append(results, TestResult{
			Profile: profile,
			Elapsed: time.Since(start),
			Err:     err,
		})
	}
	return results
}

func testProfile(ctx context.Context, newEngine EngineFactory, profile tts.Profile) error {
	engine, err := newEngine(profile)
	if err != nil {
		return fmt.Errorf("创建引擎失败: %w", err)
	}
	if closer, ok := engine.(io.Closer); ok {
		defer closer.Close()
	}

	name := fmt.Sprintf("wenyin-%s-%s-%s.wav", profile, Slug(testSentence, 2), uuid.NewString())
	outputPath := filepath.Join(os.TempDir(), name)
	defer os.Remove(outputPath)

	logger.Infof("[selftest] 档位 %s：合成测试句子到 %s", profile, outputPath)

	if _, err := NewProcessor(engine, 0).Process(ctx, testSentence, outputPath); err != nil {
		return err
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return fmt.Errorf("测试输出文件缺失: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("测试输出文件为空: %s", outputPath)
	}
	return nil
}
