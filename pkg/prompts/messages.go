package prompts

import "fmt"

// User-facing progress strings, kept in one place so the CLI reads consistently.

func StageStarting(stage, model string) string {
	return fmt.Sprintf("🚀 Running %s stage with %s...", stage, model)
}

func StageComplete(stage string, written int) string {
	return fmt.Sprintf("✅ %s stage complete: %d file(s) written.", stage, written)
}

func StagePartial(stage string, written, failed int) string {
	return fmt.Sprintf("⚠️ %s stage finished with problems: %d written, %d skipped.", stage, written, failed)
}

func StageFailed(stage string, err error) string {
	return fmt.Sprintf("❌ %s stage failed: %v", stage, err)
}

func ProjectCreated(name, root string) string {
	return fmt.Sprintf("📁 Created project '%s' at %s", name, root)
}

func PipelineComplete(name string) string {
	return fmt.Sprintf("🎉 Pipeline complete for project '%s'.", name)
}
