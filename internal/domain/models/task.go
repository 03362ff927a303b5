package models

// TaskDescriptor describe una tarea encolada en el scheduler. Las tareas se
// despachan por nombre; prioridad menor se atiende primero.
type TaskDescriptor struct {
	Name        string `json:"name"`
	RepoName    string `json:"repo_name"`
	Interactive bool   `json:"interactive"`
	Priority    int    `json:"priority"`
}
