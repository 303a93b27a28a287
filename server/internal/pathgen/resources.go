package pathgen

import "learn-path/server/internal/model"

// ResourceTiers 某项技能的分层资源：免费、付费、练习。
type ResourceTiers struct {
	Free     []model.Resource `json:"free"`
	Paid     []model.Resource `json:"paid"`
	Practice []model.Resource `json:"practice"`
}

// defaultResourceCatalog 内置的按技能组织的静态资源目录。
// 没有收录的技能在阶段生成时会被通用项目资源补齐。
func defaultResourceCatalog() map[string]ResourceTiers {
	return map[string]ResourceTiers{
		"HTML/CSS": {
			Free: []model.Resource{
				{Type: model.ResourceCourse, Title: "HTML & CSS Crash Course", Provider: "freeCodeCamp", Description: "Complete beginner-friendly introduction to web development"},
				{Type: model.ResourceDocumentation, Title: "MDN Web Docs", Provider: "Mozilla", Description: "Comprehensive reference for HTML and CSS"},
			},
			Paid: []model.Resource{
				{Type: model.ResourceCourse, Title: "Advanced CSS and Sass", Provider: "Udemy", Description: "Master modern CSS techniques and preprocessors"},
			},
			Practice: []model.Resource{
				{Type: model.ResourcePractice, Title: "CSS Grid Garden", Provider: "CodePip", Description: "Interactive game to learn CSS Grid"},
			},
		},
		"JavaScript": {
			Free: []model.Resource{
				{Type: model.ResourceCourse, Title: "JavaScript Basics", Provider: "freeCodeCamp", Description: "Learn JavaScript fundamentals with hands-on projects"},
				{Type: model.ResourceBook, Title: "You Don't Know JS", Provider: "GitHub", Description: "Deep dive into JavaScript concepts"},
			},
			Paid: []model.Resource{
				{Type: model.ResourceCourse, Title: "The Complete JavaScript Course", Provider: "Udemy", Description: "From zero to expert with real-world projects"},
			},
			Practice: []model.Resource{
				{Type: model.ResourcePractice, Title: "JavaScript30", Provider: "Wes Bos", Description: "30 vanilla JavaScript projects in 30 days"},
			},
		},
		"React": {
			Free: []model.Resource{
				{Type: model.ResourceDocumentation, Title: "React Official Tutorial", Provider: "React.dev", Description: "Official React documentation and tutorial"},
				{Type: model.ResourceVideo, Title: "React Crash Course", Provider: "Traversy Media", Description: "Quick introduction to React concepts"},
			},
			Paid: []model.Resource{
				{Type: model.ResourceCourse, Title: "React - The Complete Guide", Provider: "Udemy", Description: "Comprehensive React course with hooks and context"},
			},
			Practice: []model.Resource{
				{Type: model.ResourcePractice, Title: "React Challenges", Provider: "React Challenges", Description: "Practice React with coding challenges"},
			},
		},
		"Python": {
			Free: []model.Resource{
				{Type: model.ResourceCourse, Title: "Python for Everybody", Provider: "Coursera", Description: "University of Michigan's comprehensive Python course"},
				{Type: model.ResourceDocumentation, Title: "Python Official Tutorial", Provider: "Python.org", Description: "Official Python documentation and tutorial"},
			},
			Paid: []model.Resource{
				{Type: model.ResourceCourse, Title: "Complete Python Bootcamp", Provider: "Udemy", Description: "From zero to hero in Python programming"},
			},
			Practice: []model.Resource{
				{Type: model.ResourcePractice, Title: "HackerRank Python", Provider: "HackerRank", Description: "Python coding challenges and competitions"},
			},
		},
	}
}

// fillerResource 资源不足 3 条时的通用补位资源。
func fillerResource() model.Resource {
	return model.Resource{
		Type:        model.ResourcePractice,
		Title:       "Hands-on Projects",
		Provider:    "Self-directed",
		Description: "Apply your knowledge through practical projects",
	}
}
