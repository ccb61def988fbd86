package taxonomy

// Default returns the built-in domain taxonomy used when no custom taxonomy
// is configured.
func Default() *Taxonomy {
	t, err := New([]Entry{
		{Domain: "Artificial Intelligence & Machine Learning", Keywords: []string{
			"ai", "artificial intelligence", "machine learning", "ml", "deep learning",
			"neural network", "nlp", "natural language processing", "computer vision",
			"recommendation system", "classification", "prediction", "clustering",
			"generative ai", "llm", "large language model",
		}},
		{Domain: "Web Development", Keywords: []string{
			"web", "website", "web application", "frontend", "backend", "html", "css",
			"javascript", "react", "angular", "vue", "nodejs", "django", "flask",
			"api", "rest", "graphql", "responsive",
		}},
		{Domain: "Mobile Development", Keywords: []string{
			"mobile", "android", "ios", "flutter", "react native", "kotlin", "swift",
			"mobile app", "smartphone", "tablet", "cross-platform",
		}},
		{Domain: "Cybersecurity", Keywords: []string{
			"security", "cybersecurity", "encryption", "authentication", "penetration testing",
			"vulnerability", "firewall", "intrusion detection", "malware", "forensics",
			"risk assessment", "compliance", "iso 27001", "gdpr",
		}},
		{Domain: "Data Science & Analytics", Keywords: []string{
			"data science", "analytics", "big data", "data mining", "statistics",
			"visualization", "dashboard", "business intelligence", "etl", "data warehouse",
			"pandas", "numpy", "matplotlib", "tableau", "power bi",
		}},
		{Domain: "Internet of Things (IoT)", Keywords: []string{
			"iot", "internet of things", "sensor", "embedded", "arduino", "raspberry pi",
			"microcontroller", "smart home", "automation", "monitoring", "rfid", "bluetooth",
		}},
		{Domain: "Blockchain & Cryptocurrency", Keywords: []string{
			"blockchain", "cryptocurrency", "bitcoin", "ethereum", "smart contract",
			"decentralized", "crypto", "nft", "defi", "web3",
		}},
		{Domain: "Game Development", Keywords: []string{
			"game", "gaming", "unity", "unreal", "game development", "vr", "ar",
			"virtual reality", "augmented reality", "3d", "simulation",
		}},
		{Domain: "Healthcare & Medical", Keywords: []string{
			"health", "healthcare", "medical", "patient", "diagnosis", "telemedicine",
			"electronic health record", "ehr", "medical imaging", "drug", "pharmacy",
		}},
		{Domain: "E-commerce & Business", Keywords: []string{
			"ecommerce", "e-commerce", "online shop", "marketplace", "inventory",
			"supply chain", "crm", "erp", "business process", "payment",
		}},
		{Domain: "Education & E-learning", Keywords: []string{
			"education", "learning", "e-learning", "lms", "student", "teacher",
			"course", "quiz", "examination", "classroom", "school", "university",
		}},
		{Domain: "Social Media & Communication", Keywords: []string{
			"social media", "chat", "messaging", "communication", "social network",
			"forum", "blog", "community", "collaboration",
		}},
		{Domain: "Cloud Computing", Keywords: []string{
			"cloud", "aws", "azure", "google cloud", "docker", "kubernetes",
			"microservices", "serverless", "saas", "paas", "iaas",
		}},
		{Domain: "Computer Vision", Keywords: []string{
			"computer vision", "image processing", "object detection", "face recognition",
			"ocr", "image classification", "video analysis", "opencv",
		}},
		{Domain: "Sports & Fitness", Keywords: []string{
			"sports", "fitness", "exercise", "training", "coaching", "athlete",
			"performance", "cricket", "football", "basketball", "workout",
		}},
	})
	if err != nil {
		// The built-in table is validated by tests; this cannot happen at runtime.
		panic(err)
	}
	return t
}
