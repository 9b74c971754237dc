package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewFillsRewardDefaults(t *testing.T) {
	path := writeConfig(t, "config.test.yaml", `
app:
  env: test
server:
  http: 8080
rewards:
  signup_bonus: 30
`)

	cfg := New(path)
	if cfg.Rewards.SignupBonus != 30 {
		t.Fatalf("signup_bonus = %d, want 30", cfg.Rewards.SignupBonus)
	}
	// 未配置的项回填默认值
	if cfg.Rewards.CreditValue != 5 {
		t.Fatalf("credit_value default = %d, want 5", cfg.Rewards.CreditValue)
	}
	if cfg.Rewards.UploadRewardMin != 50 || cfg.Rewards.UploadRewardMax != 100 {
		t.Fatalf("upload range default = [%d, %d], want [50, 100]",
			cfg.Rewards.UploadRewardMin, cfg.Rewards.UploadRewardMax)
	}
	if cfg.Rewards.AllowNegativeBalance {
		t.Fatal("allow_negative_balance should default to false")
	}
}

func TestNewWithoutRewardsSection(t *testing.T) {
	path := writeConfig(t, "config.test.yaml", `
app:
  env: test
`)

	cfg := New(path)
	if cfg.Rewards == nil {
		t.Fatal("rewards should fall back to defaults")
	}
	if cfg.Rewards.SignupBonus != 25 || cfg.Rewards.ReferralBonus != 25 {
		t.Fatalf("default bonuses = %d/%d, want 25/25",
			cfg.Rewards.SignupBonus, cfg.Rewards.ReferralBonus)
	}
}

// 坏 yaml 的 panic 信息要带上真实的解析错误
func TestNewBadYamlPanics(t *testing.T) {
	path := writeConfig(t, "config.bad.yaml", "app: [unclosed")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on malformed yaml")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "yaml") {
			t.Fatalf("panic message should carry the parse error, got: %v", r)
		}
	}()
	New(path)
}
