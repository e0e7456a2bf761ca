package i18n

var zhHans = map[string]string{
	LevelUp:  "升级啦！欢迎来到 Level %d！🎉",
	XPGained: "+%d XP",

	ExplainEmpty:    "抱歉，内容生成失败。",
	ExplainFailed:   "生成内容时出错，请检查网络。",
	ChatEmpty:       "我没有理解，请再说一遍。",
	ChatUnavailable: "聊天服务暂时不可用。",
	ChatError:       "哎呀，我的脑回路好像打结了 😵‍💫。请稍后再试一次！",

	QuizEmpty:       "AI 似乎在打盹，无法生成题目。请重试一下！",
	QuizFailed:      "加载测验时出错了，请检查网络。",
	QuizCorrect:     "太棒了！回答正确 +10 XP 🌟",
	QuizIncorrect:   "哎呀，差点就对了！看看解析吧 💪",
	QuizLoading:     "正在生成场景题...",
	QuizProgress:    "第 %d / %d 题",
	QuizExplanation: "解析",
	QuizComplete:    "测验完成！",
	QuizPassed:      "通过！你真的掌握了这个模块 🏆",
	QuizKeepGoing:   "继续加油，你一定可以的 💪",
	QuizScore:       "得分：%d/%d（%d%%）",
	QuizReward:      "总奖励：+%d XP",
	QuizRetry:       "再试一次",
	QuizNext:        "下一题",
	QuizResults:     "查看结果",

	WelcomeContext:  "你好！我是 Cloudy ☁️！很高兴和你一起学习 **%s**。有什么问题尽管问我，我会用最有趣的方式为你解答！🎢",
	WelcomeGeneric:  "你好！我是 Cloudy ☁️，你的 AWS 趣味向导！我们可以聊聊各种服务，或者规划你的云架构。准备好开始了吗？🚀",
	ActionAnalogy:   "能用一个有趣的生活比喻来解释 %s 吗？比如食物或交通工具！🍕🚗",
	ActionExplain5:  "像给五岁小孩讲故事一样解释 %s 是什么。",
	ActionQuizMe:    "出一道关于 %s 的简单题目考考我！",
	ActionFunFact:   "告诉我一个关于 AWS 的冷知识！",
	ChatThinking:    "Cloudy 正在思考...",
	ChatPlaceholder: "问问 Cloudy 吧...",
	ChatYou:         "你",
	ChatTutorName:   "Cloudy",

	ViewDashboard:  "仪表盘",
	ViewEcosystem:  "生态资源",
	ViewTutor:      "AI 导师",
	TabLearn:       "学习",
	TabChat:        "对话",
	TabQuiz:        "测验",
	HeaderLevel:    "Lv %d",
	HeaderStreak:   "🔥 %d 天",
	XPToNext:       "距离下一级还需 %d XP",
	ModuleProgress: "已完成 %d/%d",
	Completed:      "已完成",
	Explaining:     "Cloudy 正在撰写讲解...",
	PickTopic:      "选择一个主题，按 Enter 获取讲解。",
	TopicTheory:    "理论",
	TopicLab:       "实验",
	ResourceTags:   "标签：%s",
	DashboardIntro: "你的 AWS 学习之旅",
}
