package entities

const (
	ResourceOwners   = "dueno"
	ResourcePets     = "mascota"
	ResourceVets     = "veterinario"
	ResourceBookings = "reserva_procedimiento"
)

var Owners = &Descriptor{
	Resource: ResourceOwners,
	Slug:     "duenos",
	Nav:      "Dueños",
	Fields: []Field{
		{Key: "nombre_completo", Label: "Nombre Completo", Kind: KindText, Placeholder: "Ej: Juan Pérez"},
		{Key: "rut", Label: "RUT", Kind: KindNationalID, Placeholder: "Ej: 12.345.678-9"},
		{Key: "telefono", Label: "Teléfono", Kind: KindText, Placeholder: "Ej: 912345678"},
		{Key: "correo", Label: "Correo Electrónico", Kind: KindEmail, Placeholder: "Ej: correo@example.com"},
	},
	Texts: Texts{
		ListTitle:     "Listado de Dueños",
		NewButton:     "Registrar Nuevo Dueño",
		EmptyList:     "No hay dueños registrados aún.",
		CreateTitle:   "Registrar Nuevo Dueño",
		EditTitle:     "Editar Dueño",
		CreateButton:  "Registrar Dueño",
		UpdateButton:  "Actualizar Dueño",
		Created:       "Dueño registrado correctamente.",
		Updated:       "Dueño actualizado correctamente.",
		Deleted:       "Dueño eliminado correctamente.",
		ConfirmDelete: "¿Está seguro de que desea eliminar este dueño? Esta acción es irreversible.",
		LoadListError: "No se pudieron cargar los dueños. Intente de nuevo más tarde.",
		LoadOneError:  "No se pudo cargar la información del dueño.",
		SaveError:     "Hubo un error al guardar el dueño",
		DeleteError:   "Hubo un error al eliminar el dueño",
	},
}

var ownerRef = &Reference{
	Resource:     ResourceOwners,
	Display:      "nombre_completo",
	Detail:       "rut",
	DetailPrefix: "RUT: ",
	Unknown:      "Desconocido",
}

var Pets = &Descriptor{
	Resource: ResourcePets,
	Slug:     "mascotas",
	Nav:      "Mascotas",
	Fields: []Field{
		{Key: "nombre_mascota", Label: "Nombre de la Mascota", Column: "Nombre", Kind: KindText, Placeholder: "Ej: Firulais"},
		{Key: "tipo_animal", Label: "Tipo de Animal", Column: "Tipo", Kind: KindSelect, Options: []string{"Perro", "Gato", "Otro"}},
		{Key: "edad", Label: "Edad (años)", Column: "Edad", Kind: KindNumber, Placeholder: "Ej: 3",
			InvalidNumber: "La edad debe ser un número positivo."},
		{Key: "raza", Label: "Raza", Kind: KindText, Placeholder: "Ej: Labrador"},
		{Key: "id_dueno", Label: "Dueño", Kind: KindReference, Ref: ownerRef,
			InvalidNumber: "Debe seleccionar un dueño válido."},
	},
	Texts: Texts{
		ListTitle:     "Listado de Mascotas",
		NewButton:     "Registrar Nueva Mascota",
		EmptyList:     "No hay mascotas registradas aún.",
		CreateTitle:   "Registrar Nueva Mascota",
		EditTitle:     "Editar Mascota",
		CreateButton:  "Registrar Mascota",
		UpdateButton:  "Actualizar Mascota",
		Created:       "Mascota registrada correctamente.",
		Updated:       "Mascota actualizada correctamente.",
		Deleted:       "Mascota eliminada correctamente.",
		ConfirmDelete: "¿Está seguro de que desea eliminar esta mascota? Esta acción es irreversible.",
		LoadListError: "No se pudieron cargar las mascotas o los dueños. Intente de nuevo más tarde.",
		LoadOneError:  "No se pudo cargar la información de la mascota.",
		LoadRefsError: "No se pudieron cargar los dueños para el selector.",
		SaveError:     "Hubo un error al guardar la mascota",
		DeleteError:   "Hubo un error al eliminar la mascota",
	},
}

var Vets = &Descriptor{
	Resource: ResourceVets,
	Slug:     "veterinarios",
	Nav:      "Veterinarios",
	Fields: []Field{
		{Key: "nombre_completo", Label: "Nombre Completo", Kind: KindText, Placeholder: "Ej: Dra. Valeria Núñez"},
		{Key: "especialidad", Label: "Especialidad", Kind: KindText, Placeholder: "Ej: Cirugía, Vacunación, Control General"},
		{Key: "telefono", Label: "Teléfono", Kind: KindText, Placeholder: "Ej: 912345000"},
	},
	Texts: Texts{
		ListTitle:     "Listado de Veterinarios",
		NewButton:     "Registrar Nuevo Veterinario",
		EmptyList:     "No hay veterinarios registrados aún.",
		CreateTitle:   "Registrar Nuevo Veterinario",
		EditTitle:     "Editar Veterinario",
		CreateButton:  "Registrar Veterinario",
		UpdateButton:  "Actualizar Veterinario",
		Created:       "Veterinario registrado correctamente.",
		Updated:       "Veterinario actualizado correctamente.",
		Deleted:       "Veterinario eliminado correctamente.",
		ConfirmDelete: "¿Está seguro de que desea eliminar este veterinario? Esta acción es irreversible.",
		LoadListError: "No se pudieron cargar los veterinarios. Intente de nuevo más tarde.",
		LoadOneError:  "No se pudo cargar la información del veterinario.",
		SaveError:     "Hubo un error al guardar el veterinario",
		DeleteError:   "Hubo un error al eliminar el veterinario",
	},
}

var Bookings = &Descriptor{
	Resource: ResourceBookings,
	Slug:     "reservas",
	Nav:      "Reservas",
	Fields: []Field{
		{Key: "id_mascota", Label: "Mascota", Kind: KindReference,
			Ref: &Reference{
				Resource:     ResourcePets,
				Display:      "nombre_mascota",
				Detail:       "id_dueno",
				DetailPrefix: "Dueño: ",
				Unknown:      "Desconocida",
			},
			InvalidNumber: "Debe seleccionar una mascota válida."},
		{Key: "id_veterinario", Label: "Veterinario", Kind: KindReference,
			Ref: &Reference{
				Resource: ResourceVets,
				Display:  "nombre_completo",
				Detail:   "especialidad",
				Unknown:  "Desconocido",
			},
			InvalidNumber: "Debe seleccionar un veterinario válido."},
		{Key: "tipo_procedimiento", Label: "Tipo de Procedimiento", Kind: KindText, Placeholder: "Ej: Vacuna anual, Cirugía dental"},
		{Key: "fecha", Label: "Fecha", Kind: KindDate},
		{Key: "hora", Label: "Hora", Kind: KindTime},
	},
	Texts: Texts{
		ListTitle:     "Listado de Reservas de Procedimientos",
		NewButton:     "Registrar Nueva Reserva",
		EmptyList:     "No hay reservas registradas aún.",
		CreateTitle:   "Registrar Nueva Reserva",
		EditTitle:     "Editar Reserva",
		CreateButton:  "Registrar Reserva",
		UpdateButton:  "Actualizar Reserva",
		Created:       "Reserva registrada correctamente.",
		Updated:       "Reserva actualizada correctamente.",
		Deleted:       "Reserva eliminada correctamente.",
		ConfirmDelete: "¿Está seguro de que desea eliminar esta reserva? Esta acción es irreversible.",
		LoadListError: "No se pudieron cargar las reservas o sus dependencias. Intente de nuevo más tarde.",
		LoadOneError:  "No se pudo cargar la información de la reserva.",
		LoadRefsError: "No se pudieron cargar los datos necesarios para el formulario de reserva.",
		SaveError:     "Hubo un error al guardar la reserva",
		DeleteError:   "Hubo un error al eliminar la reserva",
	},
}

// All devuelve los descriptores en el orden del navbar.
func All() []*Descriptor {
	return []*Descriptor{Owners, Pets, Vets, Bookings}
}

// BySlug busca un descriptor por su segmento de UI.
func BySlug(slug string) (*Descriptor, bool) {
	for _, d := range All() {
		if d.Slug == slug {
			return d, true
		}
	}
	return nil, false
}

// ByResource busca un descriptor por su recurso de API.
func ByResource(resource string) (*Descriptor, bool) {
	for _, d := range All() {
		if d.Resource == resource {
			return d, true
		}
	}
	return nil, false
}
