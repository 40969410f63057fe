package pipeline

// SampleContent is the built-in document used when no input is given.
const SampleContent = `Artificial Intelligence and Machine Learning Revolution in Business

The integration of artificial intelligence (AI) and machine learning (ML) technologies
into business operations has fundamentally transformed how organizations operate, compete,
and deliver value to customers. This technological revolution represents one of the most
significant paradigm shifts in modern business history.

1. Customer Experience Enhancement
AI-powered chatbots and virtual assistants have revolutionized customer service by providing
24/7 support, instant responses, and personalized interactions. Companies like Amazon,
Netflix, and Spotify use sophisticated recommendation algorithms to deliver personalized
experiences that increase customer satisfaction and engagement.

2. Operational Efficiency
Machine learning algorithms optimize supply chain management, predict equipment failures,
and automate routine processes. Manufacturing companies report 20-30% efficiency gains
through predictive maintenance and quality control systems.

3. Data-Driven Decision Making
Advanced analytics and AI models enable businesses to extract actionable insights from
vast amounts of data. Financial institutions use ML for fraud detection, risk assessment,
and algorithmic trading, processing millions of transactions in real-time.

4. Marketing and Sales Optimization
AI transforms marketing through targeted advertising, customer segmentation, and sales
forecasting. Companies can now predict customer behavior, optimize pricing strategies,
and personalize marketing campaigns at scale.

Challenges include data privacy and security concerns, a skills shortage in AI and ML
expertise, integration with existing systems, ethical considerations and bias mitigation,
and regulatory compliance requirements.

The AI market is projected to reach $1.8 trillion by 2030, with continued growth across
all industries. Companies that successfully integrate AI into their operations will gain
significant competitive advantages, while those that lag behind may struggle to remain
relevant in an increasingly digital economy.

For more information, email us at info@airevolution.com or call +1-555-248-3887.
Visit https://www.airevolution.com for detailed case studies and implementation guides.`
