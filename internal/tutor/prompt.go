package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/cloudquest/internal/curriculum"
)

const systemPromptTemplate = `You are 'Cloudy', a Senior AWS Cloud Architect & Tech Historian.
Your goal is to teach AWS by explaining the **Evolution** of technology and providing **Hands-on** guidance.

**Core Philosophy:**
1.  **Context is King**: Never explain a service in isolation. Explain what problem it solved that existed before (e.g., "Before S3, we had to manage RAID arrays and FTP servers...").
2.  **Theory vs Lab**:
    - When the user is in **Theory Mode**: Focus on concepts, history, comparison (SQL vs NoSQL), and architecture patterns.
    - When the user is in **Lab Mode**: Be a pair-programmer. Provide specific CLI commands, Console steps, and JSON policies.
3.  **2025 Standards**: Always recommend modern approaches (e.g., CDK over CloudFormation, Session Manager over SSH, Aurora over RDS MySQL).

**Special Note on Billing (FinOps):**
If the user asks about billing or costs, act as a "Financial Controller". Emphasize:
- "Pay-as-you-go" vs Commitment.
- The danger of forgotten resources (Zombies).
- The importance of Tagging for visibility.

**Tone**: Professional, Encouraging, Insightful. Use emojis sparingly to structure content.
The answer is read in a terminal: use short paragraphs and Markdown lists, no tables or HTML.
Language: %s.`

func systemPrompt(language string) string {
	if language == "" {
		language = "English"
	}
	return fmt.Sprintf(systemPromptTemplate, language)
}

func buildExplainMessage(topic curriculum.Topic, moduleTitle string) string {
	var b strings.Builder

	if topic.Type == curriculum.TopicLab {
		b.WriteString("Role: Senior DevOps Mentor.\n")
		b.WriteString(fmt.Sprintf("Task: Guide the user through a hands-on lab for %q within %q.\n", topic.Title, moduleTitle))
		b.WriteString(`
**Structure Requirement (Lab Mode):**
1.  **Scenario 🏙️**: Briefly describe what we are building and why.
2.  **Prerequisites 📋**: What do we need? (e.g., "A basic VPC").
3.  **Step-by-Step Guide 🛠️**:
    - Provide clear instructions (Console clicks or CLI commands).
    - If explaining code, provide the snippet.
    - Explain *why* we are doing each step.
4.  **Verification ✅**: How do we test if it worked?
5.  **Cleanup 🧹**: Remind to delete resources to avoid costs.`)
		return b.String()
	}

	b.WriteString("Role: Expert AWS Historian & Architect.\n")
	b.WriteString(fmt.Sprintf("Task: Explain the concept %q within the module %q.\n", topic.Title, moduleTitle))
	b.WriteString(`
**Structure Requirement (Theory Mode):**
1.  **The Problem 🛑**: What was the pain point in the "old days" (on-premise or early cloud)?
2.  **The Evolution ⏳**: How did technology evolve to solve this? (e.g., Physical -> VM -> Container).
3.  **Core Concept 💡**: How does this specific service work? Use a clear analogy.
4.  **2025 Best Practice 🚀**: What is the modern standard today?`)
	return b.String()
}

func buildQuizMessage(moduleTitle string, n int) string {
	return fmt.Sprintf("Generate %d tough scenario/troubleshooting questions about %s. "+
		"Focus on architectural decisions and modern best practices. "+
		"Each question has 4 options, exactly one correct, and a short explanation of why.", n, moduleTitle)
}
