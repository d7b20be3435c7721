package constants

import "fmt"

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleTeacher    = "teacher"
	RoleAccountant = "accountant"
	RoleUser       = "user"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess      = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlySuperAdminsCanAccess = "❌ Hanya super admin yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess       = "❌ Hanya staf madrasah yang boleh mengakses fitur %s."
	ErrOnlyFinanceCanAccess     = "❌ Hanya admin/bendahara yang boleh mengakses fitur %s."
	ErrOnlyAcademicCanAccess    = "❌ Hanya admin/guru yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorFinance(feature string) string {
	return fmt.Sprintf(ErrOnlyFinanceCanAccess, feature)
}

func RoleErrorAcademic(feature string) string {
	return fmt.Sprintf(ErrOnlyAcademicCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleAdmin,
		RoleTeacher,
		RoleAccountant,
		RoleUser,
	}

	AdminAndAbove = []string{
		RoleSuperAdmin,
		RoleAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}

	StaffRoles = []string{
		RoleSuperAdmin,
		RoleAdmin,
		RoleTeacher,
		RoleAccountant,
	}

	// keuangan: fees, salaries, donations, expenses, laporan
	FinanceRoles = []string{
		RoleSuperAdmin,
		RoleAdmin,
		RoleAccountant,
	}

	// akademik: siswa, absensi, ujian, jamiyat, kelas online
	AcademicRoles = []string{
		RoleSuperAdmin,
		RoleAdmin,
		RoleTeacher,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdminRole true untuk admin & super_admin
func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
