// Package dataset generates synthetic resume/job pairs with engine-computed
// scores, for training-data and regression corpora. Generation is seeded and
// fully deterministic.
package dataset

import (
	"fmt"
	"math/rand"

	"github.com/jonathan/ats-engine/internal/engine"
	"github.com/jonathan/ats-engine/internal/types"
)

// archetype groups a role family with its skill pool
type archetype struct {
	name   string
	roles  []string
	skills []string
	tools  []string
}

// archetypes are the role families samples are drawn from. Order matters for
// determinism; do not reorder without bumping dataset versions downstream.
var archetypes = []archetype{
	{
		name:   "python_backend",
		roles:  []string{"Python Developer", "Backend Developer", "Senior Python Developer", "API Developer"},
		skills: []string{"Python", "FastAPI", "Django", "Flask", "PostgreSQL", "MongoDB", "Redis", "AWS", "Docker", "Kubernetes"},
		tools:  []string{"Git", "CI/CD", "Linux", "REST API", "GraphQL"},
	},
	{
		name:   "javascript_fullstack",
		roles:  []string{"Full Stack Developer", "JavaScript Developer", "Node.js Developer", "Web Developer"},
		skills: []string{"JavaScript", "TypeScript", "Node.js", "React", "Vue.js", "Express", "MongoDB", "PostgreSQL"},
		tools:  []string{"Git", "Docker", "Webpack", "REST API"},
	},
	{
		name:   "devops",
		roles:  []string{"DevOps Engineer", "SRE", "Platform Engineer", "Cloud Engineer"},
		skills: []string{"Docker", "Kubernetes", "Terraform", "Ansible", "AWS", "Azure", "GCP", "Python", "Bash"},
		tools:  []string{"Jenkins", "Prometheus", "Grafana", "Linux", "CI/CD"},
	},
	{
		name:   "go_systems",
		roles:  []string{"Go Developer", "Backend Engineer", "Systems Engineer"},
		skills: []string{"Go", "gRPC", "Protobuf", "PostgreSQL", "Redis", "Docker", "Kubernetes", "Microservices"},
		tools:  []string{"Git", "CI/CD", "Prometheus", "Linux"},
	},
	{
		name:   "data_engineering",
		roles:  []string{"Data Engineer", "Analytics Engineer", "ETL Developer"},
		skills: []string{"Python", "SQL", "Spark", "Airflow", "Kafka", "PostgreSQL", "Snowflake", "AWS"},
		tools:  []string{"Git", "Docker", "ETL", "Data Modeling"},
	},
}

var seniorities = []types.Seniority{
	types.SeniorityEntry, types.SeniorityJunior, types.SeniorityMid,
	types.SenioritySenior, types.SeniorityLead, types.SeniorityPrincipal,
}

// Sample is one generated training record
type Sample struct {
	ID          string                `json:"id"`
	Resume      *types.ResumeProfile  `json:"resume"`
	Job         *types.JobRequirement `json:"job"`
	GapAnalysis *types.GapAnalysis    `json:"gap_analysis"`
	Score       *types.ATSScore       `json:"ats_score"`
}

// Generator produces seeded synthetic samples scored by a real engine run
type Generator struct {
	rng *rand.Rand
	eng *engine.Engine
}

// NewGenerator returns a Generator with its own seeded RNG. The same seed
// always yields the same samples.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		eng: engine.New(),
	}
}

// Generate produces n samples. Resume skill coverage is varied per sample so
// the corpus spans the full score range.
func (g *Generator) Generate(n int) ([]Sample, error) {
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		arch := archetypes[g.rng.Intn(len(archetypes))]
		job := g.makeJob(arch)
		resume := g.makeResume(arch, job)

		eval, err := g.eng.Evaluate(resume, job)
		if err != nil {
			return nil, fmt.Errorf("generate sample %d: %w", i, err)
		}

		samples = append(samples, Sample{
			ID:          fmt.Sprintf("%s-%04d", arch.name, i),
			Resume:      resume,
			Job:         job,
			GapAnalysis: eval.GapAnalysis,
			Score:       eval.Score,
		})
	}
	return samples, nil
}

func (g *Generator) makeJob(arch archetype) *types.JobRequirement {
	requiredCount := 3 + g.rng.Intn(3) // 3-5
	preferredCount := 1 + g.rng.Intn(3)

	shuffled := g.shuffle(arch.skills)
	required := shuffled[:requiredCount]
	preferred := shuffled[requiredCount:min(requiredCount+preferredCount, len(shuffled))]

	return &types.JobRequirement{
		Role:            arch.roles[g.rng.Intn(len(arch.roles))],
		RequiredSkills:  required,
		PreferredSkills: preferred,
		Tools:           g.shuffle(arch.tools)[:min(3, len(arch.tools))],
		Keywords:        required,
		Seniority:       seniorities[g.rng.Intn(len(seniorities))],
		ExperienceYears: fmt.Sprintf("%d+ years", 1+g.rng.Intn(6)),
	}
}

// makeResume builds a candidate whose skill coverage of the job varies from
// near-miss to full match.
func (g *Generator) makeResume(arch archetype, job *types.JobRequirement) *types.ResumeProfile {
	coverage := g.rng.Float64()

	skills := []string{}
	for _, s := range job.RequiredSkills {
		if g.rng.Float64() < coverage {
			skills = append(skills, s)
		}
	}
	for _, s := range job.PreferredSkills {
		if g.rng.Float64() < coverage {
			skills = append(skills, s)
		}
	}
	// Some noise skills from the same pool
	for _, s := range g.shuffle(arch.skills)[:2] {
		if !contains(skills, s) {
			skills = append(skills, s)
		}
	}

	entries := 1 + g.rng.Intn(4)
	experience := make([]types.Experience, 0, entries)
	for i := 0; i < entries; i++ {
		start := 2015 + g.rng.Intn(8)
		experience = append(experience, types.Experience{
			Title:    job.Role,
			Company:  fmt.Sprintf("Company %c", 'A'+i),
			Duration: fmt.Sprintf("%d - %d", start, start+1+g.rng.Intn(3)),
			Description: []string{
				fmt.Sprintf("Built services as a %s", job.Role),
				"Collaborated with cross-functional teams",
			},
			SkillsUsed: skills[:min(3, len(skills))],
		})
	}

	return &types.ResumeProfile{
		Name:       fmt.Sprintf("Candidate %04d", g.rng.Intn(10000)),
		Email:      "candidate@example.com",
		Phone:      "+1-555-0100",
		Summary:    fmt.Sprintf("Experienced %s.", job.Role),
		Skills:     skills,
		Experience: experience,
		Education:  []types.Education{{Degree: "B.S. Computer Science", Institution: "State University"}},
		RawText:    fmt.Sprintf("Experienced %s with skills in %v", job.Role, skills),
	}
}

func (g *Generator) shuffle(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	g.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func contains(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
