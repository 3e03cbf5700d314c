package fetcher

import (
	_ "embed"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/naciro2010/ProfileForge/internal/utils"
)

//go:embed data/jobs.yaml
var defaultCatalogYAML []byte

// JobMetadata 岗位元数据
type JobMetadata struct {
	Normalized string   `yaml:"normalized"`
	EscoCode   string   `yaml:"escoCode"`
	Aliases    []string `yaml:"aliases"`
	Core       []string `yaml:"core"`
	Trending   []string `yaml:"trending"`
	NiceToHave []string `yaml:"niceToHave"`
}

type catalogFile struct {
	Jobs []JobMetadata `yaml:"jobs"`
}

// JobCatalog 岗位到技能的映射
type JobCatalog struct {
	jobs []JobMetadata
}

// NewJobCatalog 从YAML加载，解析失败或为空时使用内置数据
func NewJobCatalog(data []byte) *JobCatalog {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		slog.Warn("job catalog unreadable, using built-in entries", "error", err)
		return &JobCatalog{jobs: defaultJobs()}
	}
	if len(file.Jobs) == 0 {
		return &JobCatalog{jobs: defaultJobs()}
	}
	return &JobCatalog{jobs: file.Jobs}
}

// DefaultJobCatalog 内嵌的岗位目录
func DefaultJobCatalog() *JobCatalog {
	return NewJobCatalog(defaultCatalogYAML)
}

// Lookup 按别名匹配岗位，第一个命中的条目胜出
// 三个字符以内的别名（如"pm"）按整词匹配
func (c *JobCatalog) Lookup(input string) (*JobMetadata, bool) {
	if strings.TrimSpace(input) == "" {
		return nil, false
	}
	lower := strings.ToLower(input)
	for i := range c.jobs {
		for _, alias := range c.jobs[i].Aliases {
			alias = strings.ToLower(alias)
			if len([]rune(alias)) <= 3 {
				if utils.ContainsWordFold(lower, alias) {
					return &c.jobs[i], true
				}
				continue
			}
			if strings.Contains(lower, alias) {
				return &c.jobs[i], true
			}
		}
	}
	return nil, false
}

func defaultJobs() []JobMetadata {
	return []JobMetadata{
		{
			Normalized: "Data Analyst",
			EscoCode:   "251101",
			Aliases:    []string{"data analyst", "analyste data", "analyste données"},
			Core:       []string{"SQL", "Tableau", "Data storytelling", "Python"},
			Trending:   []string{"Power BI", "Automation", "Generative AI"},
			NiceToHave: []string{"dbt", "Looker Studio", "Client communication"},
		},
	}
}
