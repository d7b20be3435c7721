package database

import (
	"gorm.io/gorm"

	attendanceModel "madrasa_backend/internals/features/academics/attendance/model"
	classModel "madrasa_backend/internals/features/academics/classes/model"
	examModel "madrasa_backend/internals/features/academics/exams/model"
	jamiyatModel "madrasa_backend/internals/features/academics/jamiyat/model"
	onlineModel "madrasa_backend/internals/features/academics/online/model"
	studentModel "madrasa_backend/internals/features/academics/students/model"
	teacherModel "madrasa_backend/internals/features/academics/teachers/model"
	donationModel "madrasa_backend/internals/features/finance/donations/model"
	expenseModel "madrasa_backend/internals/features/finance/expenses/model"
	feeModel "madrasa_backend/internals/features/finance/fees/model"
	gatewayModel "madrasa_backend/internals/features/finance/gateways/model"
	salaryModel "madrasa_backend/internals/features/finance/salaries/model"
	institutionModel "madrasa_backend/internals/features/institution/model"
	authModel "madrasa_backend/internals/features/users/auth/model"
	userModel "madrasa_backend/internals/features/users/user/model"
)

// Models: urutan mengikuti dependensi (users dulu, lalu master, lalu transaksi)
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&userModel.UserSettingsModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklist{},

		&institutionModel.InstitutionSettingModel{},
		&teacherModel.TeacherModel{},
		&classModel.ClassModel{},
		&studentModel.StudentModel{},

		&attendanceModel.AttendanceModel{},
		&examModel.ExamModel{},
		&examModel.ResultModel{},
		&jamiyatModel.JamiyatGroupModel{},
		&jamiyatModel.JamiyatMemberModel{},
		&jamiyatModel.JamiyatSessionModel{},
		&onlineModel.CourseModel{},
		&onlineModel.LessonModel{},
		&onlineModel.OnlineClassModel{},

		&feeModel.FeeModel{},
		&salaryModel.SalaryModel{},
		&donationModel.DonationModel{},
		&expenseModel.ExpenseModel{},
		&gatewayModel.PaymentGatewayModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
