package taxonomy

// Default builds the built-in taxonomy. Each call returns a fresh value; hosts
// build it once at startup and pass it down.
func Default() *Taxonomy {
	return MustBuild(DefaultDocument())
}

// MustBuild is Build for documents known to be valid. It panics otherwise.
func MustBuild(doc Document) *Taxonomy {
	t, err := Build(doc)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultDocument returns the built-in skill tables.
func DefaultDocument() Document {
	return Document{
		Hard: []EntrySpec{
			// languages
			{Term: "python", Variations: []string{"python3", "python programming", "py", "pytorch", "pandas", "numpy", "scikit-learn"}},
			{Term: "javascript", Variations: []string{"js", "ecmascript", "typescript", "ts", "node.js", "nodejs", "express"}},
			{Term: "java", Variations: []string{"java programming", "jdk", "spring", "spring boot"}},
			{Term: "sql", Variations: []string{"mysql", "postgresql", "sqlite", "oracle", "database", "rdbms"}},
			{Term: "c++", Variations: []string{"cpp", "cplusplus"}},
			{Term: "go", Variations: []string{"golang"}},
			{Term: "rust", Variations: []string{"rustlang"}},
			{Term: "swift", Variations: []string{"swift programming"}},

			// frameworks
			{Term: "react", Variations: []string{"reactjs", "react.js", "next.js", "gatsby"}},
			{Term: "angular", Variations: []string{"angularjs"}},
			{Term: "vue", Variations: []string{"vue.js", "vuejs"}},
			{Term: "django", Variations: []string{"django framework"}},
			{Term: "flask", Variations: []string{"flask framework"}},
			{Term: "spring", Variations: []string{"spring framework", "spring boot"}},
			{Term: "laravel", Variations: []string{"laravel framework"}},

			// tools and platforms
			{Term: "docker", Variations: []string{"docker container", "dockerfile", "containerization"}},
			{Term: "kubernetes", Variations: []string{"k8s", "kube", "container orchestration"}},
			{Term: "aws", Variations: []string{"amazon web services", "aws cloud", "s3", "ec2", "lambda"}},
			{Term: "azure", Variations: []string{"microsoft azure", "azure cloud"}},
			{Term: "gcp", Variations: []string{"google cloud platform", "google cloud"}},
			{Term: "git", Variations: []string{"github", "gitlab", "bitbucket", "version control"}},
			{Term: "jenkins", Variations: []string{"ci/cd", "continuous integration", "continuous deployment"}},
			{Term: "terraform", Variations: []string{"infrastructure as code", "iac"}},

			// databases
			{Term: "mongodb", Variations: []string{"mongo"}},
			{Term: "redis", Variations: []string{"redis database"}},
			{Term: "elasticsearch", Variations: []string{"elastic search"}},
			{Term: "postgresql", Variations: []string{"postgres"}},

			// broader technical areas
			{Term: "machine learning", Variations: []string{"ml", "artificial intelligence", "ai", "deep learning"}},
			{Term: "data science", Variations: []string{"data analysis", "data analytics"}},
			{Term: "devops", Variations: []string{"devops engineering", "site reliability engineering", "sre"}},
			{Term: "security", Variations: []string{"cybersecurity", "information security"}},
			{Term: "testing", Variations: []string{"unit testing", "integration testing", "test automation"}},
			{Term: "agile", Variations: []string{"scrum", "kanban", "agile methodology"}},
		},
		Soft: []EntrySpec{
			{Term: "leadership", Variations: []string{"leading", "lead", "team lead", "management", "mentoring"}},
			{Term: "decision making", Variations: []string{"decision-making", "decision making skills", "strategic thinking"}},
			{Term: "project management", Variations: []string{"project planning", "project coordination"}},
			{Term: "communication", Variations: []string{"communicating", "communicate", "written communication", "verbal communication", "presentation"}},
			{Term: "technical writing", Variations: []string{"documentation", "technical documentation"}},
			{Term: "public speaking", Variations: []string{"presentation skills", "speaking"}},
			{Term: "problem solving", Variations: []string{"problem-solving", "problem solver", "analytical thinking", "critical thinking"}},
			{Term: "research", Variations: []string{"research skills", "investigation"}},
			{Term: "creativity", Variations: []string{"creative thinking", "innovation"}},
			{Term: "teamwork", Variations: []string{"team player", "collaboration", "collaborative", "interpersonal skills"}},
			{Term: "conflict resolution", Variations: []string{"conflict management", "negotiation"}},
			{Term: "mentoring", Variations: []string{"coaching", "teaching"}},
			{Term: "time management", Variations: []string{"time management skills", "organizational skills", "prioritization"}},
			{Term: "adaptability", Variations: []string{"flexibility", "resilience", "change management"}},
			{Term: "attention to detail", Variations: []string{"detail-oriented", "accuracy"}},
			{Term: "work ethic", Variations: []string{"dedication", "commitment", "reliability"}},
		},
		Experience: []EntrySpec{
			{Term: "years of experience", Variations: []string{"experience", "work experience", "professional experience"}},
			{Term: "senior", Variations: []string{"senior level", "senior position"}},
			{Term: "junior", Variations: []string{"junior level", "junior position", "entry level"}},
			{Term: "lead", Variations: []string{"leadership experience", "leading teams"}},
			{Term: "industry experience", Variations: []string{"domain experience", "sector experience"}},
			{Term: "startup experience", Variations: []string{"startup", "entrepreneurial experience"}},
			{Term: "enterprise experience", Variations: []string{"enterprise", "corporate experience"}},
			{Term: "project experience", Variations: []string{"project delivery", "project execution"}},
			{Term: "client experience", Variations: []string{"client interaction", "client management"}},
			{Term: "team experience", Variations: []string{"team management", "team leadership"}},
		},
		Education: []EntrySpec{
			{Term: "bachelor", Variations: []string{"bachelors", "bs", "ba", "bachelor's degree"}},
			{Term: "masters", Variations: []string{"master", "ms", "ma", "master's degree"}},
			{Term: "phd", Variations: []string{"doctorate", "doctoral", "ph.d."}},
			{Term: "computer science", Variations: []string{"cs", "computing", "software engineering"}},
			{Term: "engineering", Variations: []string{"electrical engineering", "mechanical engineering", "civil engineering"}},
			{Term: "data science", Variations: []string{"data analytics", "analytics"}},
			{Term: "certification", Variations: []string{"certified", "certifications", "professional certification"}},
			{Term: "aws certified", Variations: []string{"aws certification"}},
			{Term: "azure certified", Variations: []string{"azure certification"}},
			{Term: "pmp", Variations: []string{"project management professional"}},
		},
	}
}
