package analyzer

// SampleArticles returns the built-in article set used by the demo.
func SampleArticles() []Article {
	return []Article{
		{
			Title: "AI Revolution in Healthcare",
			Content: `Artificial intelligence is transforming healthcare delivery worldwide.
Hospitals are implementing AI-powered diagnostic tools that can detect diseases earlier
and more accurately than traditional methods. Machine learning algorithms analyze medical
images, predict patient outcomes, and optimize treatment plans. The technology has shown
remarkable success in radiology, pathology, and drug discovery. However, concerns remain
about data privacy, algorithmic bias, and the need for human oversight in medical decisions.`,
			Language: "english",
			Source:   "TechHealth News",
			Category: "Technology",
		},
		{
			Title: "Revolución de la IA en la Atención Médica",
			Content: `La inteligencia artificial está transformando la prestación de atención
médica en todo el mundo. Los hospitales están implementando herramientas de diagnóstico
impulsadas por IA que pueden detectar enfermedades más temprano y con mayor precisión que
los métodos tradicionales. Los algoritmos de aprendizaje automático analizan imágenes
médicas, predicen resultados de pacientes y optimizan planes de tratamiento.`,
			Language: "spanish",
			Source:   "Noticias TechSalud",
			Category: "Tecnología",
		},
		{
			Title: "Climate Change Impact on Global Economy",
			Content: `A new report from the International Monetary Fund reveals that climate
change could reduce global GDP by 15% by 2050. The analysis shows that extreme weather
events, rising sea levels, and temperature changes are already affecting productivity
across industries. Financial institutions are now incorporating climate risks into their
investment strategies, while governments worldwide are implementing carbon pricing
mechanisms to incentivize green technologies.`,
			Language: "english",
			Source:   "Economic Times",
			Category: "Economics",
		},
	}
}
