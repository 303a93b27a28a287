package nlu

import (
	"fmt"
	"strings"

	"learn-path/server/internal/model"
)

// LowConfidenceThreshold 低于该置信度时直接走澄清模板，不再按意图路由。
const LowConfidenceThreshold = 0.4

// ContextualResponse 根据分类结果生成模板化回复。
// 低置信度兜底优先于意图路由；其余按 8 个意图各自的模板生成，
// 默认分支覆盖 general_question。
func (p *Processor) ContextualResponse(pi model.ProcessedInput, q Query) string {
	if pi.Confidence < LowConfidenceThreshold {
		return lowConfidenceResponse()
	}

	switch pi.Intent {
	case "adjust_timeline":
		return timelineAdjustmentResponse(pi.Entities)
	case "request_resources":
		return resourceResponse(pi.Entities)
	case "ask_progress":
		return progressResponse()
	case "seek_help":
		return helpResponse(pi.Entities)
	case "request_explanation":
		return explanationResponse(pi.Entities)
	case "change_focus":
		return focusChangeResponse(pi.Entities)
	case "ask_next_steps":
		return nextStepsResponse()
	case "request_motivation":
		return motivationResponse()
	default:
		return generalResponse()
	}
}

func timelineAdjustmentResponse(entities map[string][]string) string {
	mention := ""
	if period, ok := firstEntity(entities, "time_periods"); ok {
		mention = fmt.Sprintf("I see you mentioned %s - ", period)
	}

	return fmt.Sprintf(`I can help you adjust your learning timeline! %sHere are some options:

**Time Adjustments**:
- Reduce daily commitment to 1-2 hours
- Extend timeline to accommodate your schedule
- Focus on weekend-only learning
- Create a flexible schedule

**Content Adjustments**:
- Prioritize essential topics first
- Add more hands-on practice time
- Include buffer time for difficult concepts

What specific changes would work best for your schedule?`, mention)
}

func resourceResponse(entities map[string][]string) string {
	var b strings.Builder
	b.WriteString("Here are some excellent learning resources:\n\n")

	if tech, ok := firstEntity(entities, "technologies"); ok {
		fmt.Fprintf(&b, "**%s Resources**:\n", strings.ToUpper(tech))
		b.WriteString(techResources(tech))
	} else {
		b.WriteString("**General Learning Resources**:\n")
	}

	if rt, ok := firstEntity(entities, "resource_types"); ok {
		fmt.Fprintf(&b, "\n**%s Recommendations**:\n", strings.ToUpper(rt))
		b.WriteString(resourceTypeNotes(rt))
	}

	b.WriteString("\n\nWould you like specific recommendations for any particular topic or learning style?")
	return b.String()
}

func progressResponse() string {
	return `Let me help you track your learning progress!

**Current Status**:
- You're making great progress on your learning journey
- Consistency is key to building lasting skills

**Progress Tracking Tips**:
- Keep a daily learning journal
- Set weekly milestone goals
- Celebrate small wins along the way
- Review and reflect on what you've learned

**Next Steps**:
- Focus on completing your current phase
- Practice what you've learned through projects
- Join communities to share your progress

What specific aspect of your progress would you like to discuss?`
}

func helpResponse(entities map[string][]string) string {
	mention := ""
	if tech, ok := firstEntity(entities, "technologies"); ok {
		mention = fmt.Sprintf("I see you're working with %s - ", tech)
	}

	return fmt.Sprintf(`I'm here to help you overcome any learning challenges! %s

**When You're Stuck**:
- Break the problem into smaller parts
- Look for simpler examples first
- Try explaining the concept to someone else
- Take a short break and come back fresh

**Getting Unstuck Strategies**:
- Search for alternative explanations
- Join online communities for support
- Practice with hands-on exercises
- Ask specific questions about what confuses you

**Remember**: Everyone gets stuck sometimes - it's a normal part of learning!

What specific challenge are you facing right now?`, mention)
}

func explanationResponse(entities map[string][]string) string {
	if tech, ok := firstEntity(entities, "technologies"); ok {
		return fmt.Sprintf(`I'd be happy to explain %[1]s!

Let me break this down in simple terms with practical examples. %[1]s is commonly used for:

- Real-world applications and use cases
- Key concepts you need to understand
- How it fits into your learning journey
- Practical examples you can try

Would you like me to focus on any specific aspect of %[1]s? I can provide:
- Basic concepts and terminology
- Practical examples and code snippets
- Common use cases and applications
- How it connects to other technologies`, tech)
	}

	return `I'd be happy to explain any concept you're curious about!

**My Explanation Approach**:
- Start with simple, clear definitions
- Use real-world analogies and examples
- Break complex topics into digestible parts
- Provide practical applications

**What I Can Explain**:
- Technical concepts and terminology
- How different technologies work together
- Best practices and common patterns
- Career paths and skill development

What specific topic would you like me to explain?`
}

func focusChangeResponse(entities map[string][]string) string {
	mention := ""
	if tech, ok := firstEntity(entities, "technologies"); ok {
		mention = fmt.Sprintf("I see you're interested in %s - ", tech)
	}

	return fmt.Sprintf(`I can help you adjust your learning focus! %s

**Focus Adjustment Options**:
- Shift to different technologies or skills
- Change learning methodology (more hands-on vs. theory)
- Adjust difficulty level or pace
- Modify project types and applications

**Making the Switch**:
- We can modify your current learning path
- Add new topics while maintaining progress
- Balance breadth vs. depth of knowledge
- Ensure smooth transitions between topics

What specific changes would you like to make to your learning focus?`, mention)
}

func nextStepsResponse() string {
	return `Great question! Here are your recommended next steps:

**Immediate Actions**:
- Complete any pending exercises from your current phase
- Review and solidify concepts you've learned
- Start planning your next project or milestone

**Skill Development**:
- Identify areas that need more practice
- Look for real-world applications of your knowledge
- Connect with others learning similar skills

**Long-term Planning**:
- Set clear goals for the next 2-4 weeks
- Plan projects that showcase your growing skills
- Consider how your learning aligns with career goals

**Stay Motivated**:
- Track your progress and celebrate achievements
- Join communities and share your journey
- Keep challenging yourself with new problems

What specific area would you like to focus on next?`
}

func motivationResponse() string {
	return `You're doing amazing work on your learning journey! 🌟

**Remember Why You Started**:
- Every expert was once a beginner
- Progress isn't always linear - that's normal!
- Small, consistent steps lead to big achievements
- You're building skills that will serve you for years

**You've Got This Because**:
- You're actively seeking to improve yourself
- You're asking the right questions
- You're committed to continuous learning
- You're building valuable, in-demand skills

**Keep Moving Forward**:
- Focus on progress, not perfection
- Celebrate small wins along the way
- Connect with other learners for support
- Remember that challenges make you stronger

**Your Future Self Will Thank You** for the effort you're putting in today!

What's one thing you've learned recently that you're proud of?`
}

func generalResponse() string {
	return `I'm here to help with your learning journey!

**I Can Assist With**:
- Adjusting your learning path and timeline
- Recommending resources and materials
- Explaining concepts and technologies
- Providing motivation and guidance
- Tracking progress and next steps

**Popular Questions**:
- "How can I adjust my learning schedule?"
- "What resources do you recommend for [technology]?"
- "I'm stuck on [concept] - can you help?"
- "What should I learn next?"
- "How do I stay motivated?"

Feel free to ask me anything about your learning path, and I'll provide personalized guidance based on your goals and progress!

What would you like to know more about?`
}

func lowConfidenceResponse() string {
	return `I want to make sure I understand your question correctly.

Could you help me by being a bit more specific? For example:
- Are you asking about adjusting your learning timeline?
- Do you need help with specific concepts or technologies?
- Are you looking for resource recommendations?
- Do you want to discuss your progress or next steps?

I'm here to provide personalized guidance for your learning journey, so the more details you can share, the better I can help!

What specific aspect of your learning would you like to focus on?`
}

// techResources 按技术名给出具体资源清单，未收录的技术走通用清单。
func techResources(tech string) string {
	resources := map[string]string{
		"javascript": `- freeCodeCamp JavaScript Course
- MDN Web Docs (comprehensive reference)
- JavaScript30 by Wes Bos (hands-on projects)
- "You Don't Know JS" book series`,
		"python": `- Python.org official tutorial
- "Automate the Boring Stuff with Python"
- Codecademy Python Course
- Real Python tutorials and articles`,
		"react": `- React official documentation
- "React - The Complete Guide" (Udemy)
- React DevTools for debugging
- Create React App for quick setup`,
		"machine learning": `- Coursera Machine Learning Course (Andrew Ng)
- Kaggle Learn micro-courses
- "Hands-On Machine Learning" book
- Google's Machine Learning Crash Course`,
	}

	if r, ok := resources[tech]; ok {
		return r
	}
	return `- Official documentation and tutorials
- Online courses and bootcamps
- Practice projects and challenges
- Community forums and discussions`
}

// resourceTypeNotes 按资源形态给出说明，未收录的形态走通用说明。
func resourceTypeNotes(resourceType string) string {
	types := map[string]string{
		"course": `- Structured learning with clear progression
- Interactive exercises and quizzes
- Community support and discussions
- Certificates upon completion`,
		"book": `- In-depth coverage of topics
- Reference material for future use
- Self-paced learning
- Often includes practical exercises`,
		"video": `- Visual and auditory learning
- Step-by-step demonstrations
- Pause and replay as needed
- Often includes downloadable resources`,
		"practice": `- Hands-on skill development
- Real-world problem solving
- Portfolio building opportunities
- Immediate feedback and results`,
	}

	if t, ok := types[resourceType]; ok {
		return t
	}
	return `- Variety of formats to match your learning style
- Progressive difficulty levels
- Practical applications
- Community and support resources`
}
