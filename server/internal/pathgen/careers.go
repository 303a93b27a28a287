package pathgen

// PhaseTemplate 职业路径模板中的一个阶段骨架。
type PhaseTemplate struct {
	Title    string   `json:"title"`
	Duration string   `json:"duration"`
	Skills   []string `json:"skills"`
	Projects []string `json:"projects"`
}

// CareerPath 一条静态命名的路线图骨架，作为路径生成的种子。
type CareerPath struct {
	// Key 用于目标匹配的小写键（如 "full-stack developer"）。
	Key            string          `json:"key"`
	Title          string          `json:"title"`
	Skills         []string        `json:"skills"`
	EstimatedWeeks int             `json:"estimatedWeeks"`
	Phases         []PhaseTemplate `json:"phases"`
}

// defaultCareerPaths 内置职业路径模板。顺序有语义：目标匹配按声明顺序扫描，
// 第一个模板同时是全部匹配失败后的默认路径。
func defaultCareerPaths() []CareerPath {
	return []CareerPath{
		{
			Key:            "full-stack developer",
			Title:          "Full-Stack Developer",
			Skills:         []string{"HTML/CSS", "JavaScript", "React", "Node.js", "Databases", "APIs", "Deployment"},
			EstimatedWeeks: 16,
			Phases: []PhaseTemplate{
				{
					Title:    "Frontend Fundamentals",
					Duration: "Weeks 1-5",
					Skills:   []string{"HTML", "CSS", "JavaScript", "DOM Manipulation"},
					Projects: []string{"Personal Portfolio", "Interactive Calculator", "Todo App"},
				},
				{
					Title:    "Frontend Framework",
					Duration: "Weeks 6-10",
					Skills:   []string{"React", "State Management", "Component Architecture", "Routing"},
					Projects: []string{"Weather App", "E-commerce Frontend", "Social Media Dashboard"},
				},
				{
					Title:    "Backend Development",
					Duration: "Weeks 11-14",
					Skills:   []string{"Node.js", "Express", "Databases", "Authentication", "APIs"},
					Projects: []string{"REST API", "User Authentication System", "Blog Backend"},
				},
				{
					Title:    "Full-Stack Integration",
					Duration: "Weeks 15-16",
					Skills:   []string{"Integration", "Deployment", "Testing", "Performance"},
					Projects: []string{"Full-Stack Application", "Deployed Portfolio"},
				},
			},
		},
		{
			Key:            "data scientist",
			Title:          "Data Scientist",
			Skills:         []string{"Python", "Statistics", "Machine Learning", "Data Visualization", "SQL"},
			EstimatedWeeks: 20,
			Phases: []PhaseTemplate{
				{
					Title:    "Python & Statistics Foundation",
					Duration: "Weeks 1-6",
					Skills:   []string{"Python", "NumPy", "Pandas", "Statistics", "Probability"},
					Projects: []string{"Data Analysis Project", "Statistical Analysis", "Python Scripts"},
				},
				{
					Title:    "Data Analysis & Visualization",
					Duration: "Weeks 7-12",
					Skills:   []string{"Matplotlib", "Seaborn", "Plotly", "SQL", "Data Cleaning"},
					Projects: []string{"Business Intelligence Dashboard", "Data Cleaning Pipeline"},
				},
				{
					Title:    "Machine Learning",
					Duration: "Weeks 13-18",
					Skills:   []string{"Scikit-learn", "TensorFlow", "Model Evaluation", "Feature Engineering"},
					Projects: []string{"Prediction Model", "Classification System", "Recommendation Engine"},
				},
				{
					Title:    "Advanced ML & Deployment",
					Duration: "Weeks 19-20",
					Skills:   []string{"Deep Learning", "Model Deployment", "MLOps", "Cloud Platforms"},
					Projects: []string{"End-to-End ML Pipeline", "Deployed ML Application"},
				},
			},
		},
		{
			Key:            "mobile developer",
			Title:          "Mobile Developer",
			Skills:         []string{"React Native", "JavaScript", "Mobile UI/UX", "APIs", "App Store"},
			EstimatedWeeks: 14,
			Phases: []PhaseTemplate{
				{
					Title:    "Mobile Development Basics",
					Duration: "Weeks 1-4",
					Skills:   []string{"JavaScript", "React", "Mobile Concepts", "Development Environment"},
					Projects: []string{"Simple Mobile App", "Navigation App", "State Management Demo"},
				},
				{
					Title:    "React Native Mastery",
					Duration: "Weeks 5-9",
					Skills:   []string{"React Native", "Native Components", "Styling", "Animations"},
					Projects: []string{"Weather App", "Social Media App", "E-commerce App"},
				},
				{
					Title:    "Advanced Features",
					Duration: "Weeks 10-12",
					Skills:   []string{"Push Notifications", "Camera", "Location", "Offline Storage"},
					Projects: []string{"Feature-Rich App", "Location-Based App"},
				},
				{
					Title:    "Publishing & Optimization",
					Duration: "Weeks 13-14",
					Skills:   []string{"App Store Optimization", "Performance", "Testing", "Analytics"},
					Projects: []string{"Published App", "Performance Optimized App"},
				},
			},
		},
	}
}
