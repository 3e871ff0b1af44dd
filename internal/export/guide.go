package export

import "github.com/go-pdf/fpdf"

const (
	siteURL      = "https://www.eloruga.com"
	colosseumURL = "https://www.vibecodingcolosseum.com"
)

func build() *fpdf.Fpdf {
	s := newSheet()
	cover(s)
	shift(s)
	mentalStack(s)
	arsenal(s)
	colosseum(s)
	studioGuide(s)
	features(s)
	bestPractices(s)
	proTips(s)
	return s.pdf
}

func cover(s *sheet) {
	s.fill(colAccent)
	s.pdf.Rect(0, 0, pageW, 3, "F")

	s.y = 100
	s.pdf.SetFont("Helvetica", "B", 48)
	s.ink(colWhite)
	s.centered("VIBE CODING", s.y)
	s.y += 18

	s.pdf.SetFont("Helvetica", "", 14)
	s.ink(colGray)
	s.centered("The Era of Personal App Building", s.y)
	s.y += 10

	s.pen(colAccent)
	s.pdf.SetLineWidth(0.5)
	s.pdf.Line(pageW/2-20, s.y, pageW/2+20, s.y)
	s.y += 15

	s.pdf.SetFontSize(10)
	s.ink(colLightGray)
	s.centered("Alejandro De La Mora  |  @Oruga", s.y)
	s.y += 20

	s.pdf.SetFontSize(9)
	s.ink(colAccent)
	for _, l := range []struct{ text, url string }{
		{"www.eloruga.com", siteURL},
		{"www.vibecodingcolosseum.com", colosseumURL},
	} {
		tw := s.pdf.GetStringWidth(l.text)
		x := pageW/2 - tw/2
		s.pdf.Text(x, s.y, l.text)
		s.pdf.LinkString(x, s.y-3.5, tw, 4.5, l.url)
		s.y += 6
	}

	s.pdf.SetFontSize(7)
	s.ink(colFooter)
	s.centered("Comprehensive Guide + Presentation Deck", pageH-15)
}

func shift(s *sheet) {
	s.section()
	s.label("01 / THE SHIFT")
	s.heading("From Factory to Kitchen.", 28, colWhite)
	s.spacer(6)
	s.body("Software used to be industrial. Now it's personal. You don't need a factory to cook a meal. You just need ingredients and intent.")
	s.spacer(6)
	s.body("For decades, building software required teams of engineers, months of sprints, and millions in funding. The tools were complex, the barriers were high, and the average person was locked out of the creation process.")
	s.spacer(6)
	s.body("Vibe Coding changes this paradigm entirely. It's the idea that anyone with a clear vision and the right AI tools can build functional, beautiful software, not in months, but in hours. It's not about replacing developers; it's about democratizing the ability to create.")
	s.spacer(6)
	s.body(`Think of it like cooking: you don't need to be a Michelin-star chef to make a great meal at home. You need good ingredients (AI models), a recipe (your prompt), and the willingness to experiment. The "factory" of software is giving way to the "kitchen" of personal app building.`)
}

func mentalStack(s *sheet) {
	s.section()
	s.label("02 / THE MENTAL STACK")
	s.heading("The Mental Framework.", 28, colWhite)
	s.spacer(6)
	s.body("Every great output from AI starts with a great input. The Mental Framework is a 5-layer structure for crafting prompts that actually work. Master this, and you'll get 10x better results from any AI model.")
	s.spacer(8)

	s.numbered("01", "Meta: What is success?", `Before you type a single word, define what a successful output looks like. Is it a landing page? An API? A data analysis? Be specific. "Build me a website" is weak. "Build me a SaaS landing page with pricing tiers, dark mode, and a waitlist form" is powerful.`)
	s.numbered("02", "Context: The raw data.", "Feed the AI everything it needs to understand your world. This includes your brand guidelines, existing code, technical constraints, target audience, and competitive landscape. The more context, the better the output.")
	s.numbered("03", "Rules: Constraints & Format.", `Set boundaries. "Use TypeScript, not JavaScript." "Follow REST API conventions." "Keep the response under 500 words." Rules prevent the AI from hallucinating or going off-track.`)
	s.numbered("04", "Examples: Show, don't just tell.", "Include 2-3 examples of what you want. This is few-shot prompting. If you want a specific JSON structure, show it. If you want a specific code style, paste a sample.")
	s.numbered("05", "Request: The trigger.", `Now, and only now, make your actual request. Be direct and actionable. "Generate the React component for the pricing section based on the above context, rules, and examples."`)
}

func arsenal(s *sheet) {
	s.section()
	s.label("03 / THE ARSENAL")
	s.heading("The Tools.", 28, colWhite)
	s.spacer(6)
	s.body("You don't need a hundred tools. You need the right four. Each one serves a distinct purpose in the Vibe Coding workflow, and together they form a complete stack for building production-ready applications.")
	s.spacer(8)

	tools := []struct{ name, tagline, detail string }{
		{"Google AI Studio", "The Brain: 2M context window, multimodal input, free tier",
			"The command center. Feed it entire codebases, design systems, and documentation. It understands text, images, audio, video, and PDFs. The free tier is incredibly generous."},
		{"Lovable.dev", "The Face: Instant UI generation from descriptions",
			"Turns natural language descriptions into beautiful, functional user interfaces. Perfect for prototyping ideas rapidly and creating polished UIs."},
		{"Replit", "The Engine: Full-stack development + instant deployment",
			"A complete cloud development environment with backend capabilities, database integration, and one-click deployment. Ideal for MVPs."},
		{"Cursor / Windsurf", "The Surgical Knife: AI-powered code editor",
			"AI-native code editors that understand your entire codebase. Perfect for refactoring, debugging, and making targeted changes."},
	}
	for i, t := range tools {
		s.tool(t.name, t.tagline)
		s.body(t.detail)
		if i < len(tools)-1 {
			s.spacer(6)
		}
	}
}

func colosseum(s *sheet) {
	s.section()
	s.label("THE ARENA")
	s.heading("VIBE CODING COLOSSEUM", 28, colWhite)
	s.spacer(4)

	s.pdf.SetFont("Helvetica", "B", 14)
	s.ink(colTeal)
	s.need(12)
	s.pdf.Text(margin, s.y, "Gladiators Wanted.")
	s.y += 10

	s.body("$100 Prize  ·  30 Minutes  ·  Pure Flow.")
	s.spacer(6)
	s.body("The Vibe Coding Colosseum is a live competition where builders go head-to-head in a 30-minute sprint. Using only AI tools and their creativity, participants must build a functional application from scratch.")
	s.spacer(6)
	s.body("It's not about who's the best programmer. It's about who can communicate their vision most effectively to AI and ship something real in half an hour. The audience votes. The best builder takes the prize.")
	s.spacer(6)
	s.body("Whether you're a seasoned developer or someone who's never written a line of code, the Colosseum levels the playing field. If you can think clearly and describe what you want, you can compete.")
	s.spacer(10)

	s.pdf.SetFont("Helvetica", "B", 10)
	s.ink(colWhite)
	s.need(10)
	s.pdf.Text(margin, s.y, "Register & compete:")
	s.y += 6
	s.link("www.vibecodingcolosseum.com", colosseumURL)
}

func studioGuide(s *sheet) {
	s.section()
	s.fill(colTeal)
	s.pdf.Rect(margin, s.y-4, contentW, 2, "F")
	s.y += 6

	s.label("BONUS GUIDE")
	s.heading("Google AI Studio:", 28, colWhite)
	s.heading("Complete Guide", 28, colTeal)
	s.spacer(6)
	s.body("Google AI Studio (aistudio.google.com) is a free, web-based environment for prototyping and building with Google's Gemini AI models. This guide covers everything you need to go from zero to productive.")
	s.spacer(8)

	s.heading("Getting Started", 16, colWhite)
	s.spacer(4)
	s.numbered("01", "Go to aistudio.google.com", "Open your browser and navigate to aistudio.google.com. Sign in with your Google account. No software installation required.")
	s.numbered("02", "Choose your model", "Select from Gemini 2.5 Pro (most capable), Gemini Flash (fast), or Gemini Pro. Pro for complex reasoning, Flash for speed.")
	s.numbered("03", "Select your interaction mode", `Choose "Chat" for conversational interactions, or use the prompt editor for single-turn prompts.`)
	s.numbered("04", "Upload your context", "Upload files (PDFs, images, code, audio, video) directly into your session. Gemini processes all of them.")
}

func features(s *sheet) {
	s.section()
	s.heading("Key Features", 16, colWhite)
	s.spacer(4)

	s.bullet("2M Token Context Window", "Process up to 2 million tokens in a single session, roughly 1.4 million words or 100,000 lines of code. Feed it entire codebases and it maintains coherence.")
	s.bullet("Multimodal Input", "Upload images, audio, video, PDFs, and URLs. Gemini understands all formats natively. Show it a screenshot of a bug and ask it to fix the code.")
	s.bullet("System Instructions", `Set persistent instructions that shape every response. Example: "You are a senior TypeScript developer. Always use functional components."`)
	s.bullet("Temperature Control", "Low temperature (0.1-0.3) = deterministic outputs. High temperature (0.8-1.0) = creative outputs. Use low for code, high for brainstorming.")
	s.bullet("Code Export", "Export working prompts as Python, Node.js, or REST API snippets. Copy-paste into your app.")
	s.bullet("Grounding with Google Search", "Let Gemini access real-time web data for fact-checking and up-to-date documentation.")
	s.bullet("Structured Output", "Force responses in specific formats (JSON, XML, tables). Essential for programmatic parsing.")
}

func bestPractices(s *sheet) {
	s.section()
	s.heading("Prompting Best Practices", 16, colWhite)
	s.spacer(4)

	s.numbered("01", "Be specific and direct", `"Write a Python Flask API with 3 endpoints: GET /users, POST /users, DELETE /users/:id. Use SQLAlchemy ORM. Return JSON." This is 10x better than "make me an API."`)
	s.numbered("02", "Use system instructions", `Set the persona and constraints upfront. "You are a full-stack developer specializing in Next.js and Supabase."`)
	s.numbered("03", "Provide examples (Few-Shot)", "Show 2-3 examples of what you want. If you need a specific JSON format, paste a sample. Examples are the strongest signal.")
	s.numbered("04", "Break complex tasks down", `Don't ask for an entire app in one prompt. Break it: "First, design the schema. Then API routes. Then frontend."`)
	s.numbered("05", "Use the token counter", "Watch the live token counter. If approaching the limit, summarize earlier context or start a new session.")
	s.numbered("06", "Iterate relentlessly", "Your first prompt is never your best. Review, identify gaps, and refine. That's how you go from 80% to 100%.")
	s.numbered("07", "Upload, don't paste", "For large files, use the upload feature. It's cleaner, preserves formatting, and uses tokens more efficiently.")
}

func proTips(s *sheet) {
	s.section()
	s.heading("Pro Tips & Workflows", 16, colWhite)
	s.spacer(4)

	s.bullet(`The "Dump Everything" Workflow`, `Upload your entire project at the start. Then ask: "Analyze this project and suggest improvements." Gemini's massive context window makes this possible.`)
	s.bullet(`The "Architect First" Pattern`, `Before writing code, ask Gemini to design the architecture. "Design the folder structure, list components, define data models, outline API routes."`)
	s.bullet(`The "Rubber Duck" Technique`, "Use Gemini as your rubber duck. Explain your problem in detail, paste error messages, share code. The AI spots patterns humans miss.")
	s.bullet("Save & Reuse Prompts", "When you craft a perfect prompt template, save it. Google AI Studio lets you save and reuse prompts for common tasks.")
	s.bullet("Cost Optimization", "Use Flash for simple tasks, reserve Pro for complex reasoning. This stretches your free tier significantly.")
	s.bullet("Vision for Debugging", `Screenshot your broken UI and upload it. Ask: "Fix the CSS." Visual debugging with AI is incredibly powerful.`)

	s.spacer(10)
	s.need(30)
	s.rule(colTeal, contentW, 0.5)
	s.y += 10

	s.heading("Don't ask for permission.", 20, colWhite)
	s.heading("Just build.", 20, colTeal)
	s.spacer(10)

	s.pdf.SetFont("Helvetica", "", 9)
	s.ink(colGray)
	s.need(20)
	s.pdf.Text(margin, s.y, "Connect with us:")
	s.y += 6
	s.link("www.eloruga.com", siteURL)
	s.link("www.vibecodingcolosseum.com", colosseumURL)

	s.spacer(12)
	s.pdf.SetFontSize(7)
	s.ink(colCopyright)
	s.centered("© 2026 Alejandro De La Mora | @Oruga | All rights reserved.", s.y)
}
