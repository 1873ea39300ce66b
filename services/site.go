package services

// Static informational content for the home, about, skills, and contact
// pages. Rendering is external; handlers serve these as context payloads.

// Skill describes one technology with a self-assessed proficiency.
type Skill struct {
	Name        string `json:"name"`
	Level       string `json:"level"`
	Proficiency int    `json:"proficiency"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// TimelineEntry is one milestone on the about page.
type TimelineEntry struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Profile is the site owner's card shared across pages.
type Profile struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Location  string `json:"location"`
	Email     string `json:"email"`
	GithubURL string `json:"github_url"`
}

// HomeContext is the context payload for the home page.
type HomeContext struct {
	PageTitle       string  `json:"page_title"`
	PageDescription string  `json:"page_description"`
	Profile         Profile `json:"profile"`
	FeaturedSkills  []Skill `json:"featured_skills"`
}

// AboutContext is the context payload for the about page.
type AboutContext struct {
	PageTitle    string          `json:"page_title"`
	Profile      Profile         `json:"profile"`
	Timeline     []TimelineEntry `json:"timeline_data"`
	Achievements []string        `json:"achievements"`
}

// SkillsContext is the context payload for the skills page and skills API.
type SkillsContext struct {
	PageTitle   string   `json:"page_title"`
	Skills      []Skill  `json:"skills"`
	TotalSkills int      `json:"total_skills"`
	Categories  []string `json:"categories"`
}

// ContactContext is the context payload for the contact page.
type ContactContext struct {
	PageTitle     string  `json:"page_title"`
	Profile       Profile `json:"profile"`
	CurrentStatus string  `json:"current_status"`
	Availability  string  `json:"availability"`
}

// SiteService assembles the static page payloads.
type SiteService struct {
	profile Profile
	skills  []Skill
}

func NewSiteService() *SiteService {
	return &SiteService{
		profile: Profile{
			Name:      "Atharva Mandle",
			Title:     "Full-Stack Developer & CS Student",
			Location:  "Nagpur, Maharashtra, India",
			Email:     "atharvamandle19@gmail.com",
			GithubURL: "https://github.com/StardustEnigma",
		},
		skills: []Skill{
			{Name: "Django", Level: "Expert", Proficiency: 95, Category: "Backend",
				Description: "High-level Python web framework for rapid development with clean, pragmatic design."},
			{Name: "Python", Level: "Advanced", Proficiency: 90, Category: "Language",
				Description: "Backend development, automation, data processing, and API development."},
			{Name: "Machine Learning", Level: "Intermediate", Proficiency: 70, Category: "AI/ML",
				Description: "Data preprocessing, model training, evaluation, and practical ML applications."},
			{Name: "React", Level: "Advanced", Proficiency: 85, Category: "Frontend",
				Description: "Modern React development with hooks, context, and component-based architecture."},
			{Name: "PostgreSQL", Level: "Advanced", Proficiency: 85, Category: "Database",
				Description: "Advanced database design, optimization, and complex query development."},
			{Name: "Docker", Level: "Intermediate", Proficiency: 65, Category: "DevOps",
				Description: "Containerization, deployment automation, and DevOps practices."},
		},
	}
}

func (s *SiteService) Home() HomeContext {
	return HomeContext{
		PageTitle:       "Atharva Mandle | Full-Stack Developer & CS Student",
		PageDescription: "Full-Stack Developer from Nagpur specializing in Django, Python, Machine Learning, and DevOps.",
		Profile:         s.profile,
		FeaturedSkills:  s.skills[:3],
	}
}

func (s *SiteService) About() AboutContext {
	return AboutContext{
		PageTitle: "About Atharva Mandle | Full-Stack Developer & CS Student",
		Profile:   s.profile,
		Timeline: []TimelineEntry{
			{Year: "2024", Title: "Started CSE Journey", Icon: "graduation",
				Description: "Began Computer Science Engineering at RBU Nagpur, diving deep into programming fundamentals."},
			{Year: "2025", Title: "Full-Stack Development", Icon: "code",
				Description: "Mastered Django backend development, learned React fundamentals, and completed 2 ML client projects."},
			{Year: "Present", Title: "Expanding Horizons", Icon: "rocket",
				Description: "Strengthening Django & APIs, diving into Machine Learning, and exploring DevOps tooling."},
		},
		Achievements: []string{
			"Completed 2 Machine Learning client projects successfully",
			"Built multiple Django applications with complex backend logic",
			"Developed responsive web applications with modern frameworks",
			"Integrated REST APIs and third-party services",
		},
	}
}

func (s *SiteService) Skills() SkillsContext {
	categories := make([]string, 0, len(s.skills))
	seen := make(map[string]bool)
	for _, skill := range s.skills {
		if !seen[skill.Category] {
			seen[skill.Category] = true
			categories = append(categories, skill.Category)
		}
	}

	return SkillsContext{
		PageTitle:   "Technical Skills - Atharva Mandle",
		Skills:      s.skills,
		TotalSkills: len(s.skills),
		Categories:  categories,
	}
}

func (s *SiteService) Contact() ContactContext {
	return ContactContext{
		PageTitle:     "Contact Atharva Mandle | Full-Stack Developer",
		Profile:       s.profile,
		CurrentStatus: "Currently Working on ML & DevOps",
		Availability:  "Open to Collaborations",
	}
}
