package model

import "fmt"

// 种子数据。全新会话（槽位表为空）首次启动时水合出的初始状态，
// 对应原始客户端的 INITIAL_ROADMAP

const (
	// SeedXP 新会话的初始经验值
	SeedXP = 45200
)

// SeedCompletedDays 新会话的初始完成记录
func SeedCompletedDays() map[string][]int {
	return map[string][]int{"m0": {1}}
}

// SeedLog 新会话的初始日志
func SeedLog(timestamp string) []SystemLog {
	return []SystemLog{{
		ID:        "init",
		Text:      "SYSTEM_INITIALIZED: ARCHITECT_LINK_ESTABLISHED",
		Kind:      LogSuccess,
		Timestamp: timestamp,
	}}
}

func placeholderDays(month, startDay, count int) []DailyTask {
	days := make([]DailyTask, 0, count)
	for i := 0; i < count; i++ {
		day := startDay + i
		days = append(days, DailyTask{
			Day:            day,
			Title:          fmt.Sprintf("Sequence %d.%d: Tech Horizon", month, day),
			Objective:      "Preparing for the next stage of development mastery.",
			ConceptualWhy:  "Technology is a stack. You must master the foundation to build the future.",
			FunnyStory:     "Dave the Accountant tried to build a database in Excel. He currently has 4 million rows and his laptop is actually hovering off the desk from the fan heat.",
			StoryImageURL:  "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?auto=format&fit=crop&q=80&w=800",
			PracticalUsage: "Building high-performance data systems.",
			DetailedTheory: []TheoryPoint{{
				Title:       "Data Sequence Alpha",
				Description: "Unit decoding in progress...",
				ImageURL:    "https://images.unsplash.com/photo-1451187580459-43490279c0fa?auto=format&fit=crop&q=80&w=800",
			}},
			Resources: []Resource{},
		})
	}
	return days
}

func month0Days() []DailyTask {
	days := []DailyTask{
		{
			Day:            1,
			Title:          "The Transistor: Silicon's First Breath",
			Objective:      "Understand the physical switch that acts as the 'atom' of computing.",
			ConceptualWhy:  "Everything starts with a physical 'Yes' or 'No'. Without the transistor, we are just smashing rocks together.",
			FunnyStory:     "Meet Silicon Sam, the bouncer at 'Club Electricity'. He only lets the party start if he gets a tiny high-five on his middle leg (The Base). Your phone has billions of Sams, and they never sleep.",
			StoryImageURL:  "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?auto=format&fit=crop&q=80&w=800",
			PracticalUsage: "Understanding thermal throttling and physical CPU constraints. Every line of code eventually generates heat here.",
			DetailedTheory: []TheoryPoint{
				{
					Title:       "The P-N Junction",
					Description: "At its core, a transistor is a sandwich of doped silicon. By adding impurities (boron or phosphorus), we create regions with 'holes' (P-type) or extra electrons (N-type). The interface between these layers creates a depletion zone that blocks electricity until we apply a specific voltage to the gate.",
					ImageURL:    "https://images.unsplash.com/photo-1518770660439-4636190af475?auto=format&fit=crop&q=80&w=800",
				},
				{
					Title:       "Field-Effect Dynamics (MOSFET)",
					Description: "Modern computing relies on the MOSFET. When you apply voltage to the Gate terminal, it creates an electric field that attracts charge carriers to a narrow channel beneath it. This turns the 'insulator' into a 'conductor' instantly, allowing bits to flow.",
					ImageURL:    "https://images.unsplash.com/photo-1555664424-778a1e5e1b48?auto=format&fit=crop&q=80&w=800",
				},
				{
					Title:       "The Binary State Machine",
					Description: "By combining these switches, we create stable states. A '1' represents a high voltage state (Gate Open), and a '0' represents low voltage (Gate Closed). This is the bridge between the physical world of electrons and the mathematical world of logic.",
					ImageURL:    "https://images.unsplash.com/photo-1504639725590-34d0984388bd?auto=format&fit=crop&q=80&w=800",
				},
			},
			Resources: []Resource{
				{Type: ResourceVideo, Label: "How Transistors Work", URL: "https://www.youtube.com/watch?v=IcrBqCFLHIY", EmbedID: "IcrBqCFLHIY", Provider: "Veritasium", Difficulty: "Beginner", Duration: "8:15", Thumbnail: "https://img.youtube.com/vi/IcrBqCFLHIY/maxresdefault.jpg"},
				{Type: ResourceArticle, Label: "The History of the MOSFET", URL: "https://en.wikipedia.org/wiki/MOSFET", Difficulty: "Intermediate", Provider: "Technical History"},
			},
			Quiz: &QuizQuestion{
				Question:     "What is the primary role of the 'Base' or 'Gate' terminal in a transistor?",
				Options:      []string{"To store electricity permanently", "To act as the handle controlling current flow", "To convert heat into light", "To protect the chip from water"},
				CorrectIndex: 1,
				Explanation:  "The Gate terminal acts like a tap or handle. A small voltage at the Gate controls a much larger flow between the Source and Drain, acting as the fundamental switch.",
			},
		},
		{
			Day:            2,
			Title:          "Boolean Logic: The Grammar of Code",
			Objective:      "How logic gates (AND, OR, NOT) make complex decisions from simple states.",
			ConceptualWhy:  "Code logic is just electronic gates scaled up millions of times. If you can understand three gates, you can understand a supercomputer.",
			FunnyStory:     "Logic is like a strict parent. AND says: 'No dessert unless you finish your dinner AND wash the dishes.' OR is the cool aunt: 'You can have cake OR ice cream, either is fine!'",
			StoryImageURL:  "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?auto=format&fit=crop&q=80&w=800",
			PracticalUsage: "Writing efficient conditional statements. Bad logic in code leads to 'Heisenbugs' that disappear when you try to find them.",
			DetailedTheory: []TheoryPoint{
				{
					Title:       "The Truth Table Matrix",
					Description: "Every logic gate is defined by its Truth Table, a mathematical map of every possible input and its resulting output. This determinism is why computers are predictable.",
					ImageURL:    "https://images.unsplash.com/photo-1509228468518-180dd4864904?auto=format&fit=crop&q=80&w=800",
				},
				{
					Title:       "NAND: The Universal Builder",
					Description: "The NAND gate is called a 'Universal Gate'. Using only NAND gates, you can reconstruct any other logic gate. This is why flash memory is called 'NAND Flash'.",
					ImageURL:    "https://images.unsplash.com/photo-1551703599-6b3e8379aa8c?auto=format&fit=crop&q=80&w=800",
				},
			},
			Resources: []Resource{
				{Type: ResourceVideo, Label: "Logic Gates Explained", URL: "https://www.youtube.com/watch?v=gI-qXk7XojA", EmbedID: "gI-qXk7XojA", Provider: "CrashCourse", Difficulty: "Intermediate", Duration: "11:20", Thumbnail: "https://img.youtube.com/vi/gI-qXk7XojA/maxresdefault.jpg"},
				{Type: ResourceInteractive, Label: "Logic Gate Simulator", URL: "https://logic.ly/demo/", Difficulty: "Advanced", Provider: "Logicly"},
			},
			Quiz: &QuizQuestion{
				Question:     "Which logic gate returns TRUE only if both inputs are TRUE?",
				Options:      []string{"OR", "NOT", "XOR", "AND"},
				CorrectIndex: 3,
				Explanation:  "The AND gate requires both conditions to be met simultaneously to produce a high output (TRUE).",
			},
		},
	}
	return append(days, placeholderDays(0, 3, 28)...)
}

func month1Days() []DailyTask {
	days := []DailyTask{
		{
			Day:            1,
			Title:          "Kernel Genesis: The Ring 0 Authority",
			Objective:      "Master the concept of privilege levels and the kernel's role as the system's absolute ruler.",
			ConceptualWhy:  "In a computer, someone has to be the boss. The kernel is the god-protocol that manages every electron and memory cell.",
			FunnyStory:     "Think of the CPU like a high-end restaurant. You (the User App) are the customer. You can't just walk into the kitchen (Hardware) and start flipping burgers. You have to ask the Waiter (The Kernel) to do it for you. This is called a System Call.",
			StoryImageURL:  "https://images.unsplash.com/photo-1518433278988-78ef99ea0524?auto=format&fit=crop&q=80&w=800",
			PracticalUsage: "Optimizing application performance by understanding context switching and overhead.",
			DetailedTheory: []TheoryPoint{
				{
					Title:       "Privilege Rings",
					Description: "x86 architecture uses 'Rings' to enforce security. Ring 3 is where your browser and games live (User Mode). Ring 0 is reserved for the Kernel. Moving between these rings requires a 'Trap' or 'Interrupt', which is a costly procedure for the CPU.",
					ImageURL:    "https://images.unsplash.com/photo-1558494949-ef0109556754?auto=format&fit=crop&q=80&w=800",
				},
				{
					Title:       "The System Call Interface",
					Description: "Syscalls are the API of the OS. When you write `console.log` in JS, it eventually becomes a `write()` syscall. The CPU triggers a software interrupt, switches to Ring 0, and the kernel takes over to talk to the screen hardware.",
					ImageURL:    "https://images.unsplash.com/photo-1516116216624-53e697fedbea?auto=format&fit=crop&q=80&w=800",
				},
			},
			Resources: []Resource{
				{Type: ResourceVideo, Label: "What is an Operating System?", URL: "https://www.youtube.com/watch?v=26QPDBe-NB8", EmbedID: "26QPDBe-NB8", Provider: "PowerPoint", Difficulty: "Beginner", Duration: "12:00", Thumbnail: "https://img.youtube.com/vi/26QPDBe-NB8/maxresdefault.jpg"},
			},
			Quiz: &QuizQuestion{
				Question:     "In which 'Ring' does the Operating System Kernel typically operate?",
				Options:      []string{"Ring 3", "Ring 1", "Ring 0", "The Outer Ring"},
				CorrectIndex: 2,
				Explanation:  "Ring 0 provides the highest level of privilege, allowing the kernel to execute restricted instructions and manage hardware directly.",
			},
		},
	}
	return append(days, placeholderDays(1, 2, 29)...)
}

// SeedRoadmap 12个月的默认路线图
func SeedRoadmap() []RoadmapModule {
	return []RoadmapModule{
		{
			ID: "m0", Month: 0,
			Title:          "The Silicon Soul: Architecture",
			Description:    "Deconstruct the physical reality of computing.",
			ConceptualWhy:  "Hardware is the stage; software is the play. You cannot master the performance without knowing the acoustics of the room.",
			FunnyStory:     "Dave and the post-it notes.",
			PracticalUsage: "System performance.",
			Topics:         []string{"Transistors", "Logic Gates", "Binary"},
			Skills:         []string{"Architecture", "Logic"},
			Status:         ModuleCompleted,
			PreviewImage:   "https://images.unsplash.com/photo-1518770660439-4636190af475?auto=format&fit=crop&q=80&w=1200",
			DailySchedule:  month0Days(),
			MasteryProject: MasteryProject{Title: "Logic Lab", Description: "Build an 8-bit adder."},
			Resources:      []Resource{},
			Progress:       100,
		},
		{
			ID: "m1", Month: 1,
			Title:          "The Binary Cathedral: Systems",
			Description:    "Master the operating systems and kernel interfaces.",
			ConceptualWhy:  "The OS is the traffic controller. Without it, every app would be fighting for the same memory like a digital bar fight.",
			FunnyStory:     "The Waiter and the Burger.",
			PracticalUsage: "High-concurrency systems.",
			Topics:         []string{"Kernels", "Syscalls", "Memory Management"},
			Skills:         []string{"OS", "Performance"},
			Status:         ModuleCurrent,
			PreviewImage:   "https://images.unsplash.com/photo-1518433278988-78ef99ea0524?auto=format&fit=crop&q=80&w=1200",
			DailySchedule:  month1Days(),
			MasteryProject: MasteryProject{Title: "Kernel Bridge", Description: "Implement a basic shell."},
			Resources:      []Resource{},
			Progress:       3,
		},
		{
			ID: "m2", Month: 2,
			Title:          "The Network Nexus: Protocols",
			Description:    "Navigate the invisible highways of the internet.",
			ConceptualWhy:  "Every request you make travels through layers of protocols. Understanding them is like reading the traffic signs of the digital freeway.",
			FunnyStory:     "Bob the Packet.",
			PracticalUsage: "API design and debugging.",
			Topics:         []string{"TCP/IP", "HTTP", "DNS", "WebSockets"},
			Skills:         []string{"Networking", "Protocols"},
			Status:         ModuleLocked,
			PreviewImage:   "https://images.unsplash.com/photo-1558494949-ef0109556754?auto=format&fit=crop&q=80&w=1200",
			DailySchedule:  placeholderDays(2, 1, 30),
			MasteryProject: MasteryProject{Title: "Protocol Pioneer", Description: "Build a TCP chat application."},
			Resources:      []Resource{},
		},
		{
			ID: "m3", Month: 3,
			Title:          "The Data Forge: Databases",
			Description:    "Master the art of persistent storage and data modeling.",
			ConceptualWhy:  "Data is the new oil. But like oil, it needs refining. Databases are the refineries that turn raw information into actionable intelligence.",
			FunnyStory:     "Sally and the 4 million rows.",
			PracticalUsage: "Building scalable data systems.",
			Topics:         []string{"SQL", "NoSQL", "Indexing", "Normalization"},
			Skills:         []string{"Database", "Optimization"},
			Status:         ModuleLocked,
			PreviewImage:   "https://images.unsplash.com/photo-1544383835-bda2bc66a55d?auto=format&fit=crop&q=80&w=1200",
			DailySchedule:  placeholderDays(3, 1, 30),
			MasteryProject: MasteryProject{Title: "Data Architect", Description: "Design a normalized schema for an e-commerce platform."},
			Resources:      []Resource{},
		},
		{
			ID: "m4", Month: 4,
			Title:          "The Frontend Frontier: HTML/CSS",
			Description:    "Craft pixel-perfect interfaces from scratch.",
			ConceptualWhy:  "The frontend is the handshake between human and machine. First impressions matter, and your UI is the face of your application.",
			FunnyStory:     "The div that took 3 hours to center.",
			PracticalUsage: "Building responsive web interfaces.",
			Topics:         []string{"Semantic HTML", "CSS Grid", "Flexbox", "Animations"},
			Skills:         []string{"Frontend", "UI/UX"},
			Status:         ModuleLocked,
			PreviewImage:   "https://images.unsplash.com/photo-1507721999472-8ed4421c4af2?auto=format&fit=crop&q=80&w=1200",
			DailySchedule:  placeholderDays(4, 1, 30),
			MasteryProject: MasteryProject{Title: "Pixel Perfect", Description: "Clone a professional landing page."},
			Resources:      []Resource{},
		},
		{
			ID: "m5", Month: 5,
			Title:          "The JavaScript Engine: Core Language",
			Description:    "Master the language that powers the modern web.",
			ConceptualWhy:  "JavaScript runs everywhere - browsers, servers, IoT devices. It is the lingua franca of the internet.",
			FunnyStory:     "Why 0.1 + 0.2 !== 0.3.",
			PracticalUsage: "Building interactive applications.",
			Topics:         []string{"ES6+", "Async/Await", "Closures", "Prototypes"},
			Skills:         []string{"JavaScript", "Programming"},
			Status:         ModuleLocked,
			PreviewImage:   "https://images.unsplash.com/photo-1579468118864-1b9ea3c0db4a?auto=format&fit=crop&q=80&w=1200",
			DailySchedule:  placeholderDays(5, 1, 30),
			MasteryProject: MasteryProject{Title: "JS Mastery", Description: "Build a custom Promise implementation."},
			Resources:      []Resource{},
		},
		{
			ID: "m6", Month: 6,
			Title:          "The React Revolution: Components",
			Description:    "Build declarative UIs with the most popular frontend framework.",
			ConceptualWhy:  "React changed how we think about UIs. Components are like LEGO blocks - simple pieces that combine into complex structures.",
			FunnyStory:     "The developer who re-rendered the entire DOM.",
			PracticalUsage: "Building modern SPAs.",
			Topics:         []string{"Components", "Hooks", "State", "Context"},
			Skills:         []string{"React", "Frontend"},
			Status:         ModuleLocked,
			PreviewImage:   "https://images.unsplash.com/photo-1633356122544-f134324a6cee?auto=format&fit=crop&q=80&w=1200",
			DailySchedule:  placeholderDays(6, 1, 30),
			MasteryProject: MasteryProject{Title: "React Architect", Description: "Build a Kanban board from scratch."},
			Resources:      []Resource{},
		},
		{
			ID: "m7", Month: 7,
			Title:          "The Node Nexus: Backend",
			Description:    "Extend JavaScript to the server with Node.js.",
			ConceptualWhy:  "Node.js brought JavaScript to the backend, enabling fullstack JavaScript development and real-time applications.",
			FunnyStory:     "The event loop that never ended.",
			PracticalUsage: "Building REST APIs and microservices.",
			Topics:         []string{"Express", "REST APIs", "Middleware", "Authentication"},
			Skills:         []string{"Node.js", "Backend"},
			Status:         ModuleLocked,
			PreviewImage:   "https://images.unsplash.com/photo-1627398242454-45a1465c2479?auto=format&fit=crop&q=80&w=1200",
			DailySchedule:  placeholderDays(7, 1, 30),
			MasteryProject: MasteryProject{Title: "API Architect", Description: "Build a complete REST API with authentication."},
			Resources:      []Resource{},
		},
		{
			ID: "m8", Month: 8,
			Title:          "The TypeScript Transformation",
			Description:    "Add static typing to JavaScript for enterprise-grade code.",
			ConceptualWhy:  "TypeScript catches bugs before they happen. It is like having a spell-checker for your logic.",
			FunnyStory:     "The any that broke production.",
			PracticalUsage: "Writing maintainable, scalable code.",
			Topics:         []string{"Types", "Interfaces", "Generics", "Decorators"},
			Skills:         []string{"TypeScript", "Type Safety"},
			Status:         ModuleLocked,
			PreviewImage:   "https://images.unsplash.com/photo-1516116216624-53e697fedbea?auto=format&fit=crop&q=80&w=1200",
			DailySchedule:  placeholderDays(8, 1, 30),
			MasteryProject: MasteryProject{Title: "Type Master", Description: "Convert a JavaScript project to TypeScript."},
			Resources:      []Resource{},
		},
		{
			ID: "m9", Month: 9,
			Title:          "The Testing Temple: Quality",
			Description:    "Master the art of automated testing and TDD.",
			ConceptualWhy:  "Untested code is broken code waiting to happen. Tests are your safety net against regression.",
			FunnyStory:     "It works on my machine.",
			PracticalUsage: "Building reliable, bug-free applications.",
			Topics:         []string{"Unit Tests", "Integration", "E2E", "TDD"},
			Skills:         []string{"Testing", "Quality"},
			Status:         ModuleLocked,
			PreviewImage:   "https://images.unsplash.com/photo-1576444356170-66073046b1bc?auto=format&fit=crop&q=80&w=1200",
			DailySchedule:  placeholderDays(9, 1, 30),
			MasteryProject: MasteryProject{Title: "Test Champion", Description: "Achieve 90% test coverage on a real project."},
			Resources:      []Resource{},
		},
		{
			ID: "m10", Month: 10,
			Title:          "The DevOps Domain: CI/CD",
			Description:    "Automate your deployment pipeline from commit to production.",
			ConceptualWhy:  "DevOps bridges the gap between development and operations. Automation is the key to shipping fast and reliably.",
			FunnyStory:     "The deploy that happened on Friday at 5pm.",
			PracticalUsage: "Continuous deployment and monitoring.",
			Topics:         []string{"Docker", "GitHub Actions", "AWS", "Monitoring"},
			Skills:         []string{"DevOps", "Cloud"},
			Status:         ModuleLocked,
			PreviewImage:   "https://images.unsplash.com/photo-1667372393119-3d4c48d07fc9?auto=format&fit=crop&q=80&w=1200",
			DailySchedule:  placeholderDays(10, 1, 30),
			MasteryProject: MasteryProject{Title: "DevOps Engineer", Description: "Build a complete CI/CD pipeline."},
			Resources:      []Resource{},
		},
		{
			ID: "m11", Month: 11,
			Title:          "The Scale Summit: Architecture",
			Description:    "Design systems that handle millions of users.",
			ConceptualWhy:  "At scale, everything breaks. System design is the art of building resilient architectures that grow with demand.",
			FunnyStory:     "The database that hit 100% CPU.",
			PracticalUsage: "Building production-ready systems.",
			Topics:         []string{"Load Balancing", "Caching", "Microservices", "Queues"},
			Skills:         []string{"System Design", "Architecture"},
			Status:         ModuleLocked,
			PreviewImage:   "https://images.unsplash.com/photo-1451187580459-43490279c0fa?auto=format&fit=crop&q=80&w=1200",
			DailySchedule:  placeholderDays(11, 1, 30),
			MasteryProject: MasteryProject{Title: "Scale Architect", Description: "Design a system for 1M+ users."},
			Resources:      []Resource{},
		},
	}
}
