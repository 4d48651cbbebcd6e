package i18n

type translation struct {
	en   string
	ptBR string
}

var messages = map[Key]translation{
	EntityArea:        {"Area", "Área"},
	EntitySquad:       {"Squad", "Squad"},
	EntityMember:      {"Member", "Membro"},
	EntityApplication: {"Application", "Aplicação"},
	EntityDocument:    {"Document", "Documento"},
	EntityKnowledge:   {"Knowledge", "Conhecimento"},
	EntityFeedback:    {"Feedback", "Feedback"},
	EntityIncident:    {"Incident", "Incidente"},
	EntityImprovement: {"Improvement", "Melhoria"},
	EntitySupplier:    {"Supplier", "Fornecedor"},
	EntityVehicle:     {"Vehicle", "Veículo"},
	EntityPartNumber:  {"Part number", "Part number"},

	FieldName:        {"name", "nome"},
	FieldDescription: {"description", "descrição"},
	FieldEmail:       {"email", "e-mail"},
	FieldRole:        {"role", "cargo"},
	FieldSquad:       {"squad", "squad"},
	FieldArea:        {"area", "área"},
	FieldManager:     {"manager", "gerente"},
	FieldApplication: {"application", "aplicação"},
	FieldMember:      {"member", "membro"},
	FieldURL:         {"url", "url"},
	FieldTitle:       {"title", "título"},
	FieldStatus:      {"status", "status"},
	FieldCode:        {"code", "código"},
	FieldChassis:     {"chassis", "chassi"},
	FieldModel:       {"model", "modelo"},
	FieldYear:        {"year", "ano"},
	FieldType:        {"type", "tipo"},
	FieldSupplier:    {"supplier", "fornecedor"},

	Registered:      {"%s registered successfully.", "%s cadastrado com sucesso."},
	Updated:         {"%s updated successfully.", "%s atualizado com sucesso."},
	Deleted:         {"%s deleted successfully.", "%s excluído com sucesso."},
	NotFound:        {"%s not found.", "%s não encontrado."},
	InvalidData:     {"Invalid data.", "Dados inválidos."},
	UnexpectedError: {"An unexpected error occurred.", "Ocorreu um erro inesperado."},

	Required:    {"%s is required", "%s é obrigatório"},
	Length:      {"%s length must be between %d and %d", "%s deve ter entre %d e %d caracteres"},
	MaxLength:   {"%s must be at most %d characters", "%s deve ter no máximo %d caracteres"},
	ExactLength: {"%s must be exactly %d characters", "%s deve ter exatamente %d caracteres"},
	Email:       {"%s must be a valid email address", "%s deve ser um e-mail válido"},
	URL:         {"%s must be a valid URL", "%s deve ser uma URL válida"},
	Positive:    {"%s must be greater than zero", "%s deve ser maior que zero"},
	OneOf:       {"%s must be one of: %s", "%s deve ser um de: %s"},
	Format:      {"%s has an invalid format", "%s tem um formato inválido"},

	AlreadyInUse: {"%s is already in use.", "%s já está em uso."},
	InvalidMembers: {
		"Invalid members: %s. Members must belong to the application's squad.",
		"Membros inválidos: %s. Os membros devem pertencer à squad da aplicação.",
	},
	AssociationExists: {
		"The member is already associated with this application.",
		"O membro já está associado a esta aplicação.",
	},
	OnlySquadLeader: {
		"Only the squad leader may remove this association.",
		"Somente o líder da squad pode remover esta associação.",
	},
	NotLeadersSquad: {
		"Only possible if the member and application belong to the leader's squad.",
		"Só é possível se o membro e a aplicação pertencerem à squad do líder.",
	},
	PastAssociation: {
		"Cannot edit or remove a past association.",
		"Não é possível editar ou remover uma associação passada.",
	},
	HasDependents: {
		"%s cannot be deleted while it has linked records.",
		"%s não pode ser excluído enquanto possuir registros vinculados.",
	},

	RemovedFromFeedback: {"You were removed from feedback \"%s\".", "Você foi removido do feedback \"%s\"."},
	RemovedFromIncident: {"You were removed from incident \"%s\".", "Você foi removido do incidente \"%s\"."},
}
