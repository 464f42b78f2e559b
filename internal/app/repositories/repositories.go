package repositories

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	StudentRepository    *StudentRepository
	DepartmentRepository *DepartmentRepository
	ResultRepository     *ResultRepository
	IntakeRepository     *IntakeRepository
	SessionRepository    *SessionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DB) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		StudentRepository:    NewStudentRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		ResultRepository:     NewResultRepository(db),
		IntakeRepository:     NewIntakeRepository(db),
		SessionRepository:    NewSessionRepository(db),
	}
}
