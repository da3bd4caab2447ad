package dataset

// builtInSamples is the embedded labeled corpus: fee scams, instant-offer
// scams and messaging-only recruitment on the scam side; interview
// invitations, structured job descriptions, internships and follow-ups on
// the legitimate side.
var builtInSamples = []Sample{
	// Payment and fee scams.
	{Text: "Congratulations! You are selected for the position. Pay Rs 5000 registration fee to confirm your joining. Contact via WhatsApp only.", Label: 1},
	{Text: "Urgent hiring! Earn 50000 per month working from home. No experience needed. Send processing fee of Rs 3000 to get started immediately.", Label: 1},
	{Text: "You have been shortlisted for a top MNC. Salary 25 LPA. Join within 24 hours. Pay interview fee Rs 2000. Contact on WhatsApp.", Label: 1},
	{Text: "Immediate job offer! Work from home and earn lakhs. No interview required. Just pay Rs 1500 registration and start earning today!", Label: 1},
	{Text: "Congratulations! Selected for a global e-commerce giant. Salary 30 LPA for freshers. Pay Rs 4000 deposit. Offer expires in 24 hours. WhatsApp only.", Label: 1},
	{Text: "Guaranteed job placement. Pay Rs 10000 training fee. Get job in top MNC with 20 LPA package. No experience needed. Contact immediately.", Label: 1},
	{Text: "You won job lottery! Selected without interview. Salary 40 LPA. Send Rs 5000 to this wallet address to confirm. Urgent joining required.", Label: 1},
	{Text: "Part time job offer. Earn 3000 daily from home. Just pay Rs 500 registration. No skills required. Easy money guaranteed. WhatsApp now.", Label: 1},
	{Text: "Congratulations! Job offer from a leading software company. 35 LPA package. Pay processing fee Rs 8000. Join tomorrow. Contact via Telegram only.", Label: 1},
	{Text: "Urgent requirement! Data entry job. Earn 50000 monthly. Pay Rs 2000 registration fee. No interview. Immediate joining. WhatsApp contact.", Label: 1},
	{Text: "Selected for a Fortune 500 company. Salary 45 LPA. Pay Rs 6000 verification fee. Offer valid for 12 hours only. Contact on WhatsApp immediately.", Label: 1},
	{Text: "Work from home opportunity! Earn lakhs monthly. Just invest Rs 5000. Guaranteed returns. No experience needed. Join today via WhatsApp.", Label: 1},
	{Text: "Congratulations! You are hired. Salary 28 LPA. Send Rs 3500 to secure position. Joining within 48 hours mandatory. WhatsApp only.", Label: 1},
	{Text: "Immediate job opening! Earn 60000 per month. Pay Rs 4500 training fee. No interview required. Easy work from home. Contact now.", Label: 1},
	{Text: "Job confirmed! Pay Rs 2500 document verification charges. Salary 18 LPA. Start next week. Send payment to secure your position now.", Label: 1},
	{Text: "Earn 80000 monthly from home. Pay Rs 6000 training material fee. No experience required. Guaranteed income. Join immediately.", Label: 1},
	{Text: "Selected without interview for an IT services major. Package 22 LPA for freshers. Pay Rs 7000 onboarding fee. Urgent joining. WhatsApp for details.", Label: 1},
	{Text: "You are our lucky winner! Direct joining, no interview. Pay Rs 1200 registration fee via wallet transfer. Offer expires today. Telegram only.", Label: 1},
	{Text: "High salary data entry work. Earn daily from your phone. Deposit required: Rs 900. No interview, instant offer. Contact via WhatsApp only.", Label: 1},
	{Text: "Congratulations you are selected! Pay interview fee Rs 3000 and join within 24 hours. No email communication, WhatsApp only.", Label: 1},

	// Interview invitations and professional communication.
	{Text: "Thank you for attending the first round. You have been selected for second round of interviews. HR will contact you with further details.", Label: 0},
	{Text: "We have reviewed your profile and would like to proceed with the next steps. Please check your email for the interview schedule.", Label: 0},
	{Text: "Congratulations on clearing the technical round. Please attend the HR round on 15th March at our office. Bring original documents.", Label: 0},
	{Text: "Your interview performance was impressive. We would like to extend an offer. Please visit our office for offer letter discussion.", Label: 0},
	{Text: "Thank you for your time in the interview. We will get back to you with our decision within one week. Please wait for our response.", Label: 0},
	{Text: "We are pleased to inform you that you have cleared all interview rounds. Please visit our office for offer letter and joining formalities.", Label: 0},
	{Text: "Your application is under review. We will contact you if your profile matches our requirements. Thank you for your interest.", Label: 0},
	{Text: "We have received your application. Our HR team will review it and contact you if you are shortlisted for an interview.", Label: 0},

	// Structured job descriptions.
	{Text: "Position: Software Engineer. Location: Bangalore. Experience: 2-4 years. Skills: Java, Spring Boot, MySQL. Salary: 10-15 LPA. Apply via careers page.", Label: 0},
	{Text: "Role: Senior Developer. Office: Mumbai. Experience: 5-7 years. Tech stack: React, Node.js, AWS. CTC: 18-25 LPA. Send resume to hr@company.com", Label: 0},
	{Text: "Hiring: Data Analyst. Location: Pune. Experience: 3-5 years. Skills: Python, SQL, Tableau. Salary: 12-18 LPA. Apply through company website.", Label: 0},
	{Text: "Opening: Product Manager. Office: Delhi. Experience: 6-8 years. Domain: E-commerce. CTC: 25-35 LPA. Submit application via careers portal.", Label: 0},
	{Text: "Vacancy: DevOps Engineer. Location: Hyderabad. Experience: 4-6 years. Skills: Docker, Kubernetes, Jenkins. Salary: 15-20 LPA. Apply online.", Label: 0},
	{Text: "Role: QA Engineer. Location: Bangalore. Experience: 2-4 years. Skills: Selenium, API testing. Salary: 8-12 LPA. Apply via company portal.", Label: 0},
	{Text: "Opening: Cloud Architect. Location: Pune. Experience: 8-10 years. Skills: AWS, Azure, GCP. Salary: 30-40 LPA. Apply through careers page.", Label: 0},

	// Internships and follow-ups.
	{Text: "Summer internship program for engineering students. Duration: 2 months. Stipend: Rs 15000/month. Apply through our careers portal.", Label: 0},
	{Text: "We are offering internship opportunities for final year students. Duration: 6 months. Stipend provided. Apply via company website.", Label: 0},
	{Text: "Looking for interns in software development. Duration: 4 months. Stipend: Rs 18000/month. Apply through our official portal.", Label: 0},
	{Text: "Thank you for your patience. We are still reviewing applications and will contact you soon with an update on your application status.", Label: 0},
	{Text: "Thank you for attending the interview. We are currently evaluating all candidates and will inform you of our decision within a week.", Label: 0},
	{Text: "We have received your resume and it is being reviewed by our recruitment team. We will reach out if you are selected for the next round.", Label: 0},
}
