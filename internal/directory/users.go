package directory

import (
	"strings"

	"github.com/rajfnu/itt-ai/internal/types"
)

// Users is the static account list. Any of these can log in; the executives
// exist mainly so leadership demos have someone with an admin-equivalent view.
var Users = []types.User{
	{ID: "1", Name: "Admin User", Email: "admin@intimetec.com", Role: types.RoleAdmin, Department: "Administration"},
	{ID: "2", Name: "Sarah Johnson", Email: "hr@intimetec.com", Role: types.RoleHRStaff, Department: "Human Resources"},
	{ID: "3", Name: "Mike Chen", Email: "finance@intimetec.com", Role: types.RoleFinanceStaff, Department: "Finance"},
	{ID: "4", Name: "Alex Developer", Email: "dev@intimetec.com", Role: types.RoleEngineer, Department: "Engineering"},
	{ID: "5", Name: "Lisa Martinez", Email: "marketing@intimetec.com", Role: types.RoleMarketingStaff, Department: "Marketing"},
	{ID: "6", Name: "James Wilson", Email: "sales@intimetec.com", Role: types.RoleSalesStaff, Department: "Sales"},
	{ID: "7", Name: "Jeet Kumar", Email: "ceo@intimetec.com", Role: types.RoleCEO, Department: "Executive"},
	{ID: "8", Name: "Rakesh Gupta", Email: "cio@intimetec.com", Role: types.RoleCIO, Department: "Executive"},
	{ID: "9", Name: "Tapish Rathore", Email: "cfo@intimetec.com", Role: types.RoleCOO, Department: "Executive"},
}

// Employees is what the directory endpoint returns: every account plus staff
// who have no portal login of their own.
var Employees = append(append([]types.User{}, Users...),
	types.User{ID: "10", Name: "Tom Wilson", Email: "tom.wilson@intimetec.com", Role: types.RoleEngineer, Department: "Engineering"},
	types.User{ID: "11", Name: "Emily Brown", Email: "emily.brown@intimetec.com", Role: types.RoleEngineer, Department: "Engineering"},
	types.User{ID: "12", Name: "David Lee", Email: "david.lee@intimetec.com", Role: types.RoleHRStaff, Department: "Human Resources"},
	types.User{ID: "13", Name: "Jennifer Garcia", Email: "jennifer.garcia@intimetec.com", Role: types.RoleFinanceStaff, Department: "Finance"},
	types.User{ID: "14", Name: "Robert Taylor", Email: "robert.taylor@intimetec.com", Role: types.RoleMarketingStaff, Department: "Marketing"},
)

// FindUserByEmail matches case-insensitively. Returns nil when unknown.
func FindUserByEmail(email string) *types.User {
	email = strings.ToLower(strings.TrimSpace(email))
	for i := range Users {
		if strings.ToLower(Users[i].Email) == email {
			u := Users[i]
			return &u
		}
	}
	return nil
}

func FindUserByID(id string) *types.User {
	for i := range Users {
		if Users[i].ID == id {
			u := Users[i]
			return &u
		}
	}
	return nil
}
